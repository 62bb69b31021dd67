package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.termsnake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are applied over the defaults, so a partial file only overrides what it names.
// The first file that exists is used; if it is invalid, that is an error.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseSnakeFile(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parseSnakeFile(userCfgPath, data)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "snake.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		return parseSnakeFile(localPath, data)
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseSnakeFile(path string, data []byte) (SnakeConfig, error) {
	cfg, err := parseSnake(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseSnake decodes YAML over the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	keys := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if cfg.Keys == nil {
		cfg.Keys = keys
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termsnake", filename)
}
