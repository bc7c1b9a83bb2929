package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/deduce/pkg/deduce/internalerr"
)

// Transcript drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverNone   = "none"
)

// Config represents the deduce configuration file
type Config struct {
	Prompt     string     `yaml:"prompt"`
	Strict     bool       `yaml:"strict"`
	LogLevel   string     `yaml:"log_level"`
	Rules      []string   `yaml:"rules"`
	Transcript Transcript `yaml:"transcript"`
}

// Transcript selects where interpreter exchanges are recorded
type Transcript struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		LogLevel: "warn",
		Transcript: Transcript{
			Driver: DriverMemory,
		},
	}
}

// Load reads a YAML configuration file on top of Default. Relative rule
// and transcript paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, r := range cfg.Rules {
		cfg.Rules[i] = resolve(dir, r)
	}
	if cfg.Transcript.Path != "" {
		cfg.Transcript.Path = resolve(dir, cfg.Transcript.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level %q", internalerr.ErrInvalidConfig, c.LogLevel)
	}

	switch c.Transcript.Driver {
	case DriverMemory, DriverNone:
	case DriverSQLite:
		if c.Transcript.Path == "" {
			return fmt.Errorf("%w: transcript.path required for driver %q", internalerr.ErrInvalidConfig, DriverSQLite)
		}
	default:
		return fmt.Errorf("%w: unknown transcript driver %q", internalerr.ErrInvalidConfig, c.Transcript.Driver)
	}
	return nil
}

// Level parses LogLevel; an empty level means info
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(c.LogLevel)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
