package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	customPath string
	loadOnce   sync.Once
	loaded     Config
)

// SetPath sets a custom config file path before the first Get call.
// Set by the CLI from the --config flag.
func SetPath(path string) {
	customPath = path
}

// Get returns the difficulty table, loading it on first use.
// Load errors fall back to the built-in defaults: a broken user config must
// never prevent a session from starting.
func Get() Config {
	loadOnce.Do(func() {
		cfg, err := Load(customPath)
		if err != nil {
			cfg = Default()
		}
		loaded = cfg
	})
	return loaded
}

// Load reads the difficulty table.
// Search order: customPath -> ~/.wego/configs/games.yaml -> ./configs/games.yaml -> embedded default.
// Files earlier in the order are layered over the defaults, so a partial
// config only overrides the games it names.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Custom path is authoritative: a broken file is an error, not a fallback
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath("games.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default() // discard a half-applied parse
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "games.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGamesYAML, &cfg); err != nil {
		return Default(), nil // hardcoded fallback if the embed is malformed
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wego", "configs", filename)
}
