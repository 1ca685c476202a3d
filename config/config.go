package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingAPIKey is returned when OPENAI_API_KEY is absent or blank.
// The CLI treats it as a dedicated exit-1 failure, checked before any
// repository or network work.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

// Config is the root configuration structure.
// Credentials never come from a file; they are overlaid from the
// environment via ApplyEnv.
type Config struct {
	APIKey         string       `json:"-"`
	Model          string       `json:"model"`
	BaseURL        string       `json:"baseUrl"`
	Temperature    float64      `json:"temperature"`
	TimeoutSeconds int          `json:"timeoutSeconds"`
	Filters        FilterConfig `json:"filters"`
}

// FilterConfig holds changed-file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gpt-4o-mini",
		BaseURL:        "https://api.openai.com/v1",
		Temperature:    0.2,
		TimeoutSeconds: 60,
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".whatsnew.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".whatsnew.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".whatsnew.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overlays environment credentials onto the configuration.
// getenv is injectable so tests never mutate the process environment.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	key := strings.TrimSpace(getenv("OPENAI_API_KEY"))
	if key == "" {
		return ErrMissingAPIKey
	}
	c.APIKey = key

	if model := strings.TrimSpace(getenv("OPENAI_MODEL")); model != "" {
		c.Model = model
	}

	return nil
}
