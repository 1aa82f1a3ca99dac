// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/splicedd/pkg/ports"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user configuration directory.
const AppName = "splicedd"

// FileName is the configuration file name inside the configuration directory.
const FileName = "config.yaml"

// Config represents the user configuration.
type Config struct {
	// SampleDir is the base directory samples are written under.
	SampleDir string `yaml:"sample_dir"`

	// Placeholders asks the front end to reserve sample paths with empty
	// files before downloads finish. Served to it by the get_config command.
	Placeholders bool `yaml:"placeholders"`

	// LogLevel is one of debug, info, warn, error or quiet.
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "info",
	}
}

// DefaultPath returns the configuration file location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// LoadFromFile loads configuration from a YAML file. Values missing from the
// file keep their defaults.
func LoadFromFile(fsys ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	data, err := fsys.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Load is LoadFromFile, except that a missing file yields the defaults.
func Load(fsys ports.FileSystem, path string) (Config, error) {
	cfg, err := LoadFromFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Save writes the configuration as YAML, creating the parent directory.
func (c Config) Save(fsys ports.FileSystem, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return fsys.WriteFile(path, data)
}

// Level returns the parsed log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}
