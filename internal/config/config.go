// SPDX-License-Identifier: MIT
// Package config loads the ratsolve TOML configuration.
//
// Every key is optional; missing keys keep their defaults. A missing path
// means "defaults only".
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned when a value is outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the complete CLI configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Solver SolverConfig `toml:"solver"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig selects how solutions are printed.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// SolverConfig holds solver switches.
type SolverConfig struct {
	// Verify re-multiplies A·x for unique solutions.
	Verify bool `toml:"verify"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatText, Color: true},
		Solver: SolverConfig{Verify: true},
		Log:    LogConfig{Level: "warn"},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// Decoding into the populated struct keeps defaults for absent keys.
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize lower-cases enumerated values.
func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate rejects an unknown output format or log level.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: output.format %q: %w", c.Output.Format, ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured log level. Call after Validate.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}

	return lvl
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("config: log.level %q: %w", s, ErrInvalidConfig)
}
