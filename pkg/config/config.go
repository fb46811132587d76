// Package config loads user defaults for sift from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "SIFT_CONFIG"

// Config holds defaults applied beneath command-line flags.
type Config struct {
	// Color is auto, always, or never.
	Color string `yaml:"color"`

	// Engine is the default pattern engine: posix, perl, or fixed.
	Engine string `yaml:"engine"`

	// IgnoreCase turns on -i by default for grep.
	IgnoreCase bool `yaml:"ignore_case"`

	// LineNumbers turns on -n by default for grep.
	LineNumbers bool `yaml:"line_numbers"`

	// Debug writes diagnostic messages to stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Color:  "auto",
		Engine: "posix",
	}
}

// DefaultPath returns $SIFT_CONFIG if set, else config.yaml under the
// user's config directory. It returns "" when neither can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sift", "config.yaml")
}

// LoadConfig loads configuration from the specified file path.
// A missing file (or an empty path) yields the defaults without error.
// A file that exists but is malformed is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	switch c.Engine {
	case "posix", "perl", "fixed":
	default:
		return fmt.Errorf("invalid engine %q, must be one of: posix, perl, fixed", c.Engine)
	}
	return nil
}
