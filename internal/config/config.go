// Package config loads application settings from a YAML file with
// environment overrides. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvConfig   = "CLOSET_CONFIG"
	EnvAddr     = "CLOSET_ADDR"
	EnvLogLevel = "CLOSET_LOG_LEVEL"
	EnvLanguage = "CLOSET_LANG"
)

// Window is the initial size of the 3D viewer
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds settings shared by the binaries
type Config struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"logLevel"`
	// Language overrides locale detection when set
	Language string `yaml:"language"`
	// Policy is "clamp" or "parity"
	Policy   string `yaml:"policy"`
	SpecFile string `yaml:"specFile"`
	Window   Window `yaml:"window"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Policy:   "clamp",
		Window:   Window{Width: 1400, Height: 900},
	}
}

// DefaultPath is gocloset/config.yaml under the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gocloset", "config.yaml")
}

// Load reads path on top of the defaults and applies the environment.
// An empty path falls back to $CLOSET_CONFIG and then DefaultPath; a
// missing file at a default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if path = os.Getenv(EnvConfig); path != "" {
			explicit = true
		} else {
			path = DefaultPath()
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// ApplyEnv overrides settings from non-empty environment variables
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvLanguage); v != "" {
		c.Language = v
	}
}
