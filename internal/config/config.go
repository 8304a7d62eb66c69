// Package config loads the interpreter settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultMaxDepth = 4096
	DefaultLogLevel = "warning"
)

var errInvalidMaxDepth = errors.New("max_depth must be positive")
var errInvalidLogLevel = errors.New("unknown log_level")

// Config holds the interpreter settings. Every field is optional in the file.
type Config struct {
	Path string `yaml:"-"`

	MaxDepth    int    `yaml:"max_depth"`
	LogLevel    string `yaml:"log_level"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		MaxDepth: DefaultMaxDepth,
		LogLevel: DefaultLogLevel,
		Color:    true,
	}
}

// Load reads path on top of the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", abs, err)
	}
	defer file.Close()

	cfg, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}

	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d", errInvalidMaxDepth, c.MaxDepth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", errInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to the default level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
