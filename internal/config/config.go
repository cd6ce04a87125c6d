// Package config loads settings for the todo binary.
//
// Sources, lowest priority first:
//  1. Built-in defaults
//  2. User config file (~/.tada/tada.toml, else <UserConfigDir>/tada/tada.toml)
//  3. Project config file (./tada.toml or ./.tada.toml), or the file named by TADA_CONFIG
//  4. Environment variables (TADA_*)
//  5. CLI flags
//
// The todo collection itself is never configured or persisted; these
// settings only shape how the consumers render it.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Default values.
const (
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Config holds the settings for one run.
type Config struct {
	Theme    string `toml:"theme"`
	Group    bool   `toml:"group"`
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
	// Seed starts the store with the example dataset.
	Seed bool `toml:"seed"`

	// File is the config file that was applied last, if any.
	File string `toml:"-"`
}

// Defaults returns a config with every field at its default.
func Defaults() *Config {
	return &Config{
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Seed:     true,
	}
}

// ValidationError reports a field with an unusable value.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate normalizes and checks the config.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if !validTheme(c.Theme) {
		return &ValidationError{
			Field: "theme",
			Value: c.Theme,
			Err:   fmt.Errorf("want one of %s", strings.Join(Themes, ", ")),
		}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &ValidationError{Field: "log_level", Value: c.LogLevel, Err: err}
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
