// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Explicit config path (empty = default location)
}

// NewLoader creates a new Loader. An empty path means the default
// location under the user config directory is used.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// defaultConfigPath returns the default config file location,
// e.g. ~/.config/taskdeck/config.toml.
func defaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck", ConfigFileName)
}

// Load returns the configuration merged over defaults. A missing file
// is not an error; defaults are returned.
func (l *Loader) Load() (*domain.Config, error) {
	path := l.path
	if path == "" {
		path = defaultConfigPath()
	}

	base := domain.NewDefaultConfig()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded domain.Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return mergeConfigs(base, &loaded), nil
}

// mergeConfigs overlays non-empty fields of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	merged := *base
	if override.UI.AccentColor != "" {
		merged.UI.AccentColor = override.UI.AccentColor
	}
	if override.UI.TimeFormat != "" {
		merged.UI.TimeFormat = override.UI.TimeFormat
	}
	if override.Tasks.DefaultPriority != "" {
		merged.Tasks.DefaultPriority = override.Tasks.DefaultPriority
	}
	if override.Log.Level != "" {
		merged.Log.Level = override.Log.Level
	}
	return &merged
}
