// Package config provides centralized configuration for tagshift.
// Values come from built-in defaults, an optional YAML file and environment
// variables, in that order of precedence (later wins), and are validated
// up front so a bad setting fails before any file is touched.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Shift     ShiftConfig     `yaml:"shift"`
	Timestamp TimestampConfig `yaml:"timestamp"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info" yaml:"level"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text" yaml:"format"`
}

// ShiftConfig holds timestamp shifting settings.
type ShiftConfig struct {
	// Default is the offset used when none is given: "random", a duration or a timestamp
	Default string `env:"SHIFT_DEFAULT" envAlt:"TAGSHIFT_SHIFT" default:"random" yaml:"default"`

	// RandomMin is the smallest random shift into the past (default: 30 days)
	RandomMin time.Duration `env:"SHIFT_RANDOM_MIN" default:"720h" yaml:"random_min"`

	// RandomMax is the largest random shift into the past (default: 730 days)
	RandomMax time.Duration `env:"SHIFT_RANDOM_MAX" default:"17520h" yaml:"random_max"`
}

// TimestampConfig controls how the time column is written.
type TimestampConfig struct {
	// Weekdays is a comma-separated list of 7 abbreviations, Sunday first.
	// Empty means English (sun, mon, ...).
	Weekdays []string `env:"TIMESTAMP_WEEKDAYS" yaml:"weekdays"`

	// Separator goes between the date and the clock. Empty means U+3000.
	Separator string `env:"TIMESTAMP_SEPARATOR" yaml:"separator"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if c.Shift.RandomMin <= 0 {
		errs = append(errs, "SHIFT_RANDOM_MIN must be positive")
	}
	if c.Shift.RandomMax < c.Shift.RandomMin {
		errs = append(errs, fmt.Sprintf("SHIFT_RANDOM_MAX (%s) must be >= SHIFT_RANDOM_MIN (%s)",
			c.Shift.RandomMax, c.Shift.RandomMin))
	}

	if n := len(c.Timestamp.Weekdays); n != 0 && n != 7 {
		errs = append(errs, fmt.Sprintf("TIMESTAMP_WEEKDAYS must list 7 names (Sunday first), got %d", n))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}, ", c.Logging.Level, c.Logging.Format)
	fmt.Fprintf(&b, "Shift: {Default: %q, RandomMin: %s, RandomMax: %s}, ",
		c.Shift.Default, c.Shift.RandomMin, c.Shift.RandomMax)
	fmt.Fprintf(&b, "Timestamp: {Weekdays: %v, Separator: %q}", c.Timestamp.Weekdays, c.Timestamp.Separator)
	b.WriteString("}")
	return b.String()
}
