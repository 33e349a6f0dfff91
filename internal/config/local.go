package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file at the repository root.
const LocalConfigFileName = ".git-hook-setup.toml"

// LocalConfig holds per-repo overrides from .git-hook-setup.toml.
// Theme is a per-user setting and is not read from here.
type LocalConfig struct {
	Defaults HookSettings            `toml:"defaults"`
	Hooks    map[string]HookSettings `toml:"hooks"`
}

// LoadLocal reads the per-repo config from the given repo root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if md.IsDefined("theme") {
		return nil, fmt.Errorf("%s: [theme] is only allowed in the global config", configFile)
	}
	if err := validateHookSections(local.Hooks); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}

	return &local, nil
}

// defaultLocalConfig is the template for config init --local
const defaultLocalConfig = `# git-hook-setup local config (per-repo overrides)
# Place this file at the root of the repository.
# Settings here override the global config for this repo only.

# [defaults]
# linter = "eslint"
# formatter = "prettier"

# [hooks.pre-push]
# test = true
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}

// InitLocal writes the local template into repoPath.
// Returns the path to the created file
func InitLocal(repoPath string, force bool) (string, error) {
	path := filepath.Join(repoPath, LocalConfigFileName)
	if err := writeTemplate(path, defaultLocalConfig, force); err != nil {
		return "", err
	}
	return path, nil
}
