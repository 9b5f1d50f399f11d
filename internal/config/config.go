package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonscout/internal/errors"
)

// DefaultFileName is the config file looked up in the working
// directory when --config is not given.
const DefaultFileName = ".jsonscout.yaml"

// Config holds scan defaults that may be set from a YAML file.
// Command-line flags override anything loaded here.
type Config struct {
	Extensions    string `yaml:"extensions"`
	Output        string `yaml:"output"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Workers       int    `yaml:"workers"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Extensions:    "json",
		Output:        "pretty",
		CaseSensitive: false,
		Workers:       1,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty
// path falls back to DefaultFileName in the working directory; a
// missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to read config file '%s'", path),
			err,
		)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to parse config file '%s'", path),
			err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that loaded values are usable.
func (c *Config) Validate() error {
	if c.Output != "pretty" && c.Output != "json" {
		return errors.NewConfigError(
			fmt.Sprintf("invalid output mode '%s' (want 'pretty' or 'json')", c.Output),
			nil,
		)
	}
	if c.Workers < 1 {
		return errors.NewConfigError(
			fmt.Sprintf("workers must be at least 1, got %d", c.Workers),
			nil,
		)
	}
	return nil
}
