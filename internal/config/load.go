package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings the game cannot start with.
func (c *Config) validate() error {
	if c.Well.Width < 2 || c.Well.Height < 4 || c.Well.Depth < 2 {
		return fmt.Errorf("well dimensions %dx%dx%d too small",
			c.Well.Width, c.Well.Height, c.Well.Depth)
	}
	if c.Well.CubeSize <= 0 {
		return fmt.Errorf("cube_size must be positive, got %v", c.Well.CubeSize)
	}
	if c.Well.GhostAlpha < 0 || c.Well.GhostAlpha > 1 {
		return fmt.Errorf("ghost_alpha must be in [0,1], got %v", c.Well.GhostAlpha)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Cubewell")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Cubewell")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "cubewell")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cubewell")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
