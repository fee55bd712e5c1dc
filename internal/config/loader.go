package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load loads the settings file.
// Search order: customPath -> ~/.tictactoe/config.yaml -> ./configs/tictactoe.yaml -> embedded default.
// Values missing from a file keep their defaults. The returned path is the
// file that was read, or empty when only the embedded default was used.
func Load(customPath string) (Settings, string, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = DefaultSettings() // Fallback to hardcoded if embed fails
	}

	// Custom path must exist and parse
	if customPath != "" {
		path := ExpandPath(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, path, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", "tictactoe.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, path, candidate.Validate()
	}

	return cfg, "", cfg.Validate()
}

// LoadServer reads the server section of the settings file at path and
// applies TICTACTOE_* environment overrides. With an empty path only
// defaults and the environment are used.
func LoadServer(path string) (ServerConfig, error) {
	var f serverFile

	if path == "" {
		if err := cleanenv.ReadEnv(&f); err != nil {
			return f.Server, fmt.Errorf("config: server environment: %w", err)
		}
		return f.Server, nil
	}

	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return f.Server, fmt.Errorf("config: server section of %s: %w", path, err)
	}
	return f.Server, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Dir returns the per-user data directory, ~/.tictactoe.
func Dir() string {
	return ExpandPath("~/.tictactoe")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tictactoe", filename)
}
