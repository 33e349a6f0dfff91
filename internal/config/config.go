package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the global config file location.
const EnvConfigPath = "GIT_HOOK_SETUP_CONFIG"

// ErrConfigExists is returned by Init and InitLocal when the target file is
// already present and force is false.
var ErrConfigExists = errors.New("config file already exists")

// HookSettings selects what a generated hook runs. Empty strings and nil
// pointers mean "not set" and inherit from a lower layer.
type HookSettings struct {
	Linter    string `toml:"linter" json:"linter,omitempty"`
	Formatter string `toml:"formatter" json:"formatter,omitempty"`
	Test      *bool  `toml:"test" json:"test,omitempty"`
	Custom    string `toml:"custom" json:"custom,omitempty"`
}

// IsZero reports whether no field is set.
func (s HookSettings) IsZero() bool {
	return s.Linter == "" && s.Formatter == "" && s.Test == nil && s.Custom == ""
}

// ThemeConfig holds UI theme settings
type ThemeConfig struct {
	Name string `toml:"name" json:"name,omitempty"` // preset family, see ValidThemeNames
	Mode string `toml:"mode" json:"mode,omitempty"` // "auto", "light" or "dark"
}

// Config holds the git-hook-setup configuration
type Config struct {
	Defaults HookSettings            `toml:"defaults" json:"defaults"`
	Hooks    map[string]HookSettings `toml:"hooks" json:"hooks,omitempty"` // keyed by hook kind
	Theme    ThemeConfig             `toml:"theme" json:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Hooks: map[string]HookSettings{},
		Theme: ThemeConfig{Name: "default", Mode: "auto"},
	}
}

// Path returns the global config file path. GIT_HOOK_SETUP_CONFIG wins over
// ~/.config/git-hook-setup/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-hook-setup", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
// Returns error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a global config from path, with the same missing-file
// behaviour as Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Hooks == nil {
		cfg.Hooks = map[string]HookSettings{}
	}

	if err := validateHookSections(cfg.Hooks); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if err := validateEnum(cfg.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if err := validateEnum(cfg.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = "auto"
	}
	return cfg, nil
}

const defaultConfig = `# git-hook-setup configuration

# Defaults applied to every installable hook (pre-commit, commit-msg, pre-push).
# Command-line flags always win over values from this file.
#
# [defaults]
# linter = "ruff"        # ruff, black, pylint, flake8, eslint, shellcheck
# formatter = "black"    # black, prettier
# test = false           # run the detected test command

# Per-hook overrides. Section names are hook kinds.
# custom points at a script that the hook execs instead of the commands above.
# Relative paths are resolved against the repository root.
#
# [hooks.pre-push]
# test = true
#
# [hooks.pre-commit]
# custom = "scripts/pre-commit.sh"

# Note: commit-msg always installs the conventional commit validator and
# ignores these settings.

# UI theme for tables and interactive prompts
# [theme]
# name = "default"       # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"          # auto, light, dark
`

// DefaultConfig returns the default global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if err := writeTemplate(path, defaultConfig, force); err != nil {
		return "", err
	}
	return path, nil
}

func writeTemplate(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
