// Package config loads figit configuration from ~/.config/figit/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the figit configuration.
type Config struct {
	// Remote is the remote name used for push/pull/fetch actions.
	Remote string `toml:"remote"`
	// ProtectedBranches are never offered for deletion.
	ProtectedBranches []string `toml:"protected_branches"`
	// ListLimit caps gh listings (repos, PRs, issues) and the commit log.
	ListLimit int `toml:"list_limit"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Remote:            "origin",
		ProtectedBranches: []string{"main", "master"},
		ListLimit:         30,
	}
}

// Protected reports whether branch is in the protected list.
func (c Config) Protected(branch string) bool {
	for _, p := range c.ProtectedBranches {
		if p == branch {
			return true
		}
	}
	return false
}

// Path returns the config file path.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "figit", "config.toml"), nil
}

// Load reads the config file. A missing file yields Default() without error;
// an invalid file is an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = Default().ListLimit
	}
	return cfg, nil
}

const defaultFile = `# figit configuration

# Remote used for push/pull/fetch actions.
remote = "origin"

# Branches never offered for deletion.
protected_branches = ["main", "master"]

# Maximum rows fetched for gh listings and the commit log.
list_limit = 30
`

// Init writes the default config file. It refuses to overwrite an existing
// file unless force is set.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
