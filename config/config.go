// Package config holds the already-parsed numeric settings the engine
// consumes, plus a file loader for the command line tool. The core packages
// only ever see the structs, never the file format
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultInitialFunds        = 10000
	defaultAnnualizationFactor = 252
)

// Load reads a run definition from a TOML, YAML or JSON file and validates
// the run-level settings. Per-strategy parameters are validated by the
// strategy constructors
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("initial-funds", defaultInitialFunds)
	v.SetDefault("annualization-factor", defaultAnnualizationFactor)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the run-level invariants
func (c *Config) Validate() error {
	if c.InitialFunds <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFunds, c.InitialFunds)
	}
	if c.ScoreThreshold < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeScoreThreshold, c.ScoreThreshold)
	}
	if len(c.Strategies) == 0 {
		return ErrNoStrategies
	}
	for i := range c.Strategies {
		if c.Strategies[i].Weight < 0 {
			return fmt.Errorf("%w: strategy %q weight %v",
				ErrNegativeWeight, c.Strategies[i].Name, c.Strategies[i].Weight)
		}
	}
	return nil
}

// ValidatePeriod is shared by the strategy constructors
func ValidatePeriod(name string, period int) error {
	if period <= 0 {
		return fmt.Errorf("%w: %s %v", ErrInvalidPeriod, name, period)
	}
	return nil
}

// ValidateThresholds is shared by the crossing strategy constructors
func ValidateThresholds(t Thresholds) error {
	if t.Up <= t.Down {
		return fmt.Errorf("%w: up %v down %v", ErrInvalidThresholds, t.Up, t.Down)
	}
	return nil
}
