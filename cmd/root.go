package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/whatsnew-go/config"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "whatsnew",
		Usage:   "Generate localized App Store release notes from a git revision range",
		Version: "1.0.0",
		Flags:   generateFlags(),
		Action:  generateAction,
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from-sha",
			Usage:    "Start revision of the range",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to-sha",
			Usage:    "End revision of the range",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "Path of the JSON file to write",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "Git backend (cli, gogit)",
			Value: "cli",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of changed files to keep (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of changed files to drop (can be specified multiple times)",
		},
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
