package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "featgen.yaml"

// Config controls where documents are read from and how they are translated.
type Config struct {
	Source    string            `yaml:"source"`
	Output    string            `yaml:"output"`
	Extension string            `yaml:"extension"`
	Strict    bool              `yaml:"strict"`
	Workers   int               `yaml:"workers"`
	Roles     map[string]string `yaml:"roles,omitempty"`
	LogLevel  string            `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Source:    "docs",
		Output:    "features",
		Extension: ".md",
		Workers:   4,
		LogLevel:  "info",
	}
}

// Load reads path on top of the defaults, then applies .env and FEATGEN_*
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnv loads .env when present. Existing variables win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FEATGEN_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("FEATGEN_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("FEATGEN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("FEATGEN_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FEATGEN_STRICT: %w", err)
		}
		c.Strict = b
	}
	if v := os.Getenv("FEATGEN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FEATGEN_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with a dot, got %q", c.Extension)
	}
	return nil
}

// DatabasePath is the build database kept next to the generated features.
func (c Config) DatabasePath() string {
	return filepath.Join(c.Output, "featgen.db")
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Write stores c as YAML at path.
func Write(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
