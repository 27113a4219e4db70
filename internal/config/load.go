package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/datascape/pkg/validate"
)

// FileName is the config file looked up in the working and config directories.
const FileName = "datascape.yaml"

// Load loads configuration with priority: defaults < file < flags.
// The merged result is validated before it is returned.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that the builders would otherwise reject later.
func (c *Config) Validate() error {
	const op = "config.Validate"
	switch {
	case c.Terrain.Width < 1:
		return validate.Invalid(op, "terrain.width", "must be at least 1")
	case c.Terrain.Depth < 1:
		return validate.Invalid(op, "terrain.depth", "must be at least 1")
	case !(c.Terrain.Scale > 0):
		return validate.Invalid(op, "terrain.scale", "must be positive")
	case !(c.Skyline.TickDelta >= 0):
		return validate.Invalid(op, "skyline.tick_delta", "must not be negative")
	case c.Skyline.MaxTicks < 0:
		return validate.Invalid(op, "skyline.max_ticks", "must not be negative")
	}
	th := c.Terrain.Thresholds
	if !(th.Mid <= th.High && th.High <= th.Peak) {
		return validate.Invalid(op, "terrain.thresholds", "must satisfy mid <= high <= peak")
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		filepath.Join(".", FileName),
		filepath.Join(ConfigDir(), FileName),
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
		return filepath.Join(home, "Library", "Application Support", "Datascape")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Datascape")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "datascape")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "datascape")
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
