package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds all CLI configuration options.
type Config struct {
	DB          string `json:"db"`
	Table       string `json:"table,omitempty"`
	JournalMode string `json:"journal_mode,omitempty"` //nolint:tagliatelle // snake_case for config file
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DB: "sqlist.db",
	}
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".sqlist.json"

// globalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/sqlist/config.json if set, otherwise
// ~/.config/sqlist/config.json. Empty when no home can be determined.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "sqlist", "config.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "sqlist", "config.json")
	}

	return ""
}

// LoadConfig loads configuration with the following precedence (highest wins):
//  1. Defaults
//  2. Global user config
//  3. Project config (.sqlist.json in workDir, if it exists)
//  4. Explicit config file via configPath (if non-empty)
//  5. CLI flag overrides (applied by the caller)
func LoadConfig(workDir, configPath string, env map[string]string) (Config, ConfigSources, error) {
	cfg := DefaultConfig()

	var sources ConfigSources

	globalPath := globalConfigPath(env)
	if globalPath != "" {
		loaded, ok, err := loadConfigFile(globalPath)
		if err != nil {
			return Config{}, ConfigSources{}, fmt.Errorf("global config %s: %w", globalPath, err)
		}

		if ok {
			sources.Global = globalPath
			cfg = mergeConfig(cfg, loaded)
		}
	}

	projectPath := configPath
	required := configPath != ""

	if projectPath == "" {
		projectPath = filepath.Join(workDir, ConfigFileName)
	}

	loaded, ok, err := loadConfigFile(projectPath)
	if err != nil {
		return Config{}, ConfigSources{}, fmt.Errorf("config %s: %w", projectPath, err)
	}

	if required && !ok {
		return Config{}, ConfigSources{}, fmt.Errorf("config %s: %w", projectPath, os.ErrNotExist)
	}

	if ok {
		sources.Project = projectPath
		cfg = mergeConfig(cfg, loaded)
	}

	return cfg, sources, nil
}

// loadConfigFile reads a HuJSON (JSON with comments and trailing commas)
// config file. ok is false when the file does not exist.
func loadConfigFile(path string) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flags/env
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, false, nil
	}

	if err != nil {
		return Config{}, false, err
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, true, nil
}

// mergeConfig overlays set fields of overlay onto base.
func mergeConfig(base, overlay Config) Config {
	if overlay.DB != "" {
		base.DB = overlay.DB
	}

	if overlay.Table != "" {
		base.Table = overlay.Table
	}

	if overlay.JournalMode != "" {
		base.JournalMode = overlay.JournalMode
	}

	return base
}
