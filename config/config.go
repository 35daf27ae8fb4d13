// Package config provides TOML configuration loading for keyline hosts.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Input settings
type Input struct {
	Prompt     string `toml:"prompt"`
	MaxHistory int    `toml:"maxHistory"`
}

// History persistence settings
type History struct {
	// File is the SQLite database submitted lines are persisted to.
	// Empty keeps history in memory only.
	File string `toml:"file"`
}

// Completion settings
type Completion struct {
	Mode  string   `toml:"mode"` // "words" or "paths"
	Words []string `toml:"words"`
}

// Config is the main configuration struct
type Config struct {
	Input      Input      `toml:"input"`
	History    History    `toml:"history"`
	Completion Completion `toml:"completion"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Input: Input{
			Prompt:     "> ",
			MaxHistory: 100,
		},
		History: History{
			File: "",
		},
		Completion: Completion{
			Mode:  "words",
			Words: []string{"help", "history", "exit"},
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "keyline"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := ConfigPath()
	if err != nil {
		return cfg, nil // Return defaults if we can't determine path
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil // Return defaults if no user config
	}

	userCfg, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	return merge(cfg, userCfg), nil
}

// LoadFile loads a TOML config file from an explicit path.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults.
// Only non-zero values from user config override defaults.
func merge(defaults, user *Config) *Config {
	result := *defaults

	if user.Input.Prompt != "" {
		result.Input.Prompt = user.Input.Prompt
	}
	if user.Input.MaxHistory != 0 {
		result.Input.MaxHistory = user.Input.MaxHistory
	}
	if user.History.File != "" {
		result.History.File = user.History.File
	}
	if user.Completion.Mode != "" {
		result.Completion.Mode = user.Completion.Mode
	}
	if len(user.Completion.Words) != 0 {
		result.Completion.Words = user.Completion.Words
	}

	return &result
}

// DefaultTOML returns the default configuration as a TOML string.
// Used to generate a starting user config file.
func DefaultTOML() string {
	return `# keyline configuration
# Save to ~/.config/keyline/config.toml and customize
# Only include settings you want to change from defaults

[input]
prompt = "> "
maxHistory = 100        # Lines of history kept; 0 disables recall

[history]
file = ""               # SQLite file for persistent history (empty = in-memory)

[completion]
mode = "words"          # "words" or "paths"
words = ["help", "history", "exit"]
`
}
