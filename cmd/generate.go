package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/whatsnew-go/internal/gitctx"
	"github.com/masmgr/whatsnew-go/internal/openai"
	"github.com/masmgr/whatsnew-go/internal/pipeline"
)

func generateAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// The credential check runs before any repository or network work.
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}

	filters := gitctx.FilterOptions{
		Include: cfg.Filters.Include,
		Exclude: cfg.Filters.Exclude,
	}
	source, err := newSource(c.String("engine"), c.String("repo"), filters)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		FromSHA:    c.String("from-sha"),
		ToSHA:      c.String("to-sha"),
		OutputPath: c.String("output"),
	}

	color.Green("Summarizing %v", gitctx.RangeExpression(opts.FromSHA, opts.ToSHA))

	if err := pipeline.Run(c.Context, opts, source, openai.NewClient(cfg)); err != nil {
		return err
	}

	fmt.Printf("Wrote localized release notes to %s\n", opts.OutputPath)
	return nil
}

// newSource selects the git backend from the engine flag.
func newSource(engine, repoPath string, filters gitctx.FilterOptions) (gitctx.Source, error) {
	switch engine {
	case "", "cli":
		return gitctx.NewCLISource(repoPath, filters), nil
	case "gogit":
		return gitctx.NewHistorySource(repoPath, filters)
	default:
		return nil, fmt.Errorf("unknown engine %q (expected cli or gogit)", engine)
	}
}
