// Package config loads the gitwire user configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// UserConfig holds process-wide settings. Every field has a working default,
// so a missing config file is not an error.
type UserConfig struct {
	// GitBinary is the name or path of the git executable.
	GitBinary string `json:"gitBinary,omitempty"`
	// CommandTimeoutSeconds bounds each git invocation. 0 means the built-in
	// default; negative disables the timeout.
	CommandTimeoutSeconds int `json:"commandTimeoutSeconds,omitempty"`
	// Color is "auto", "always", or "never".
	Color string `json:"color,omitempty"`
	// LogFile is where the rotating debug log goes. Empty disables it.
	LogFile string `json:"logFile,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		GitBinary: "git",
		Color:     "auto",
	}
}

// Timeout converts CommandTimeoutSeconds into a duration for the runner.
func (c *UserConfig) Timeout() time.Duration {
	if c.CommandTimeoutSeconds < 0 {
		return -1
	}
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// ConfigPath returns the user config file location, honoring the
// GITWIRE_USER_CONFIG_PATH override.
func ConfigPath() string {
	if p := os.Getenv("GITWIRE_USER_CONFIG_PATH"); p != "" {
		return p
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "gitwire", "config.json")
}

// Load reads the user config, falling back to defaults when the file is
// missing. A malformed file is an error; silently ignoring it would hide
// typos in timeout or binary settings.
func Load() (*UserConfig, error) {
	cfg := DefaultConfig()
	path := ConfigPath()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.GitBinary == "" {
		cfg.GitBinary = "git"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}

// Save writes the config, creating its directory if needed.
func (c *UserConfig) Save() error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("no config path available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
