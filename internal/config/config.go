// Package config loads run configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
)

// Defaults applied when no value is configured.
const (
	DefaultTarget  = "dW"
	DefaultLatent  = "mu"
	DefaultHDIProb = 0.89
	DefaultTopN    = 10
	DefaultTheme   = "light"
)

// ErrEmptyTarget is returned when the target variable name is blank.
var ErrEmptyTarget = errors.New("target variable name must not be empty")

// ErrInvalidHDIProb is returned when the HDI probability is outside (0, 1].
var ErrInvalidHDIProb = errors.New("hdi_prob must be in (0, 1]")

// ErrInvalidTopN is returned when top_n is not positive.
var ErrInvalidTopN = errors.New("top_n must be at least 1")

// ErrInvalidTheme is returned for unknown report themes.
var ErrInvalidTheme = errors.New("theme must be light or dark")

// Config is the top-level configuration struct for predcheck.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Target is the observed variable's base name.
	Target string `mapstructure:"target"`

	// Latent is the latent mean variable's name in the draws.
	Latent string `mapstructure:"latent"`

	// HDIProb is the credible-interval probability mass.
	HDIProb float64 `mapstructure:"hdi_prob"`

	// Variants are the prediction column suffixes to score.
	Variants []string `mapstructure:"variants"`

	// TopN limits each uncertainty facet to the highest observed cases.
	TopN int `mapstructure:"top_n"`

	// Theme selects the report color scheme ("light" or "dark").
	Theme string `mapstructure:"theme"`
}

// Validate checks configured values for consistency.
func (c *Config) Validate() error {
	if c.Target == "" {
		return ErrEmptyTarget
	}

	if c.HDIProb <= 0 || c.HDIProb > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidHDIProb, c.HDIProb)
	}

	if c.TopN < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopN, c.TopN)
	}

	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("%w: got %q", ErrInvalidTheme, c.Theme)
	}

	return nil
}
