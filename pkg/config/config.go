// Package config loads firstrun's configuration by layering defaults, an
// optional .firstrun.toml in the working tree, and FIRSTRUN_-prefixed
// environment variables, highest layer winning.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/firstrun/pkg/errors"
)

// ConfigFileName is the optional per-project configuration file
const ConfigFileName = ".firstrun.toml"

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "FIRSTRUN_"

// Config is the resolved firstrun configuration
type Config struct {
	k *koanf.Koanf
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"state.dir":        "",
		"install.required": false,
		"gitignore.path":   ".gitignore",
		"gitignore.group":  "install-logs",
	}
}

// Load resolves configuration for the given working directory. An empty
// dir means the current directory. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. System defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project config file, when present
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
	}

	// 3. Environment variables: FIRSTRUN_INSTALL_REQUIRED -> install.required
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return &Config{k: k}, nil
}

// StateDir returns the configured state directory, empty when the XDG
// default should be used
func (c *Config) StateDir() string {
	return c.k.String("state.dir")
}

// InstallRequired is the externally supplied "installation required"
// signal consumed by the orchestrator's entry point
func (c *Config) InstallRequired() bool {
	return c.k.Bool("install.required")
}

// GitignorePath returns the .gitignore file the log paths are added to
func (c *Config) GitignorePath() string {
	return c.k.String("gitignore.path")
}

// GitignoreGroup returns the tag grouping firstrun's managed entries
func (c *Config) GitignoreGroup() string {
	return c.k.String("gitignore.group")
}

// InstallerSpec declares one shell-command installer in the config file
type InstallerSpec struct {
	Priority int    `koanf:"priority"`
	Command  string `koanf:"command"`
}

// Installers returns the shell installers declared under [installers.*]
func (c *Config) Installers() (map[string]InstallerSpec, error) {
	specs := map[string]InstallerSpec{}
	if !c.k.Exists("installers") {
		return specs, nil
	}
	if err := c.k.Unmarshal("installers", &specs); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid [installers] section")
	}
	return specs, nil
}
