// Package config loads diceroll's application settings: defaults, then an
// optional YAML file, then DICEROLL_* environment variables.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lmaotrigine/diceroll/internal/errors"
	"github.com/lmaotrigine/diceroll/internal/logger"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "DICEROLL_"

// Output formats for rendered rolls
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds application configuration
type Config struct {
	Logging logger.Config `yaml:"logging" envPrefix:"LOG_"`
	Roll    RollConfig    `yaml:"roll" envPrefix:"ROLL_"`
}

// RollConfig holds settings for rolling and rendering dice
type RollConfig struct {
	// Format is "text" or "json"
	Format string `yaml:"format" env:"FORMAT"`

	// Seed makes rolls reproducible when set
	Seed *int64 `yaml:"seed" env:"SEED"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Logging: logger.DefaultConfig(),
		Roll: RollConfig{
			Format: FormatText,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
				WithMeta("path", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file").
				WithMeta("path", path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks the roll settings and the logging settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Roll.Format", c.Roll.Format, []string{FormatText, FormatJSON}, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	return c.Logging.Validate()
}
