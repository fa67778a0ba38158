// Package config loads the curbctl configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Config holds the user-level curbctl settings.
type Config struct {
	// ServerURL is the Curbwise API base URL.
	ServerURL string `yaml:"server_url"`
	// Output selects "table" or "json" rendering for list commands.
	Output string `yaml:"output"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		ServerURL: "https://api.curbwise.io/api/v1",
		Output:    "table",
	}
}

// DefaultPath returns ~/.curbwise/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".curbwise", configFile), nil
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. The CURBWISE_SERVER environment variable overrides the
// server URL from either source.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if env := os.Getenv("CURBWISE_SERVER"); env != "" {
		cfg.ServerURL = env
	}
	if cfg.Output == "" {
		cfg.Output = "table"
	}
	return cfg, nil
}
