package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "quill.yaml"

// Environment variables consulted by Load.
const (
	EnvAPIKey       = "QUILL_API_KEY"
	EnvAPIKeyLegacy = "API_KEY"
	EnvImages       = "QUILL_IMAGES"
	EnvLogLevel     = "QUILL_LOG_LEVEL"
)

// Config is the file-level configuration of the quill CLI.
type Config struct {
	Story    string `yaml:"story"`
	Root     string `yaml:"root"`
	LogLevel string `yaml:"log_level"`
	Images   Images `yaml:"images"`
}

// Images configures illustration generation.
type Images struct {
	Enabled  bool          `yaml:"enabled"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Load reads path (or DefaultFile when path is empty) and applies environment overrides.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.Images.APIKey = key
	} else if key := os.Getenv(EnvAPIKeyLegacy); key != "" && c.Images.APIKey == "" {
		c.Images.APIKey = key
	}

	if v := os.Getenv(EnvImages); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvImages, v, err)
		}
		c.Images.Enabled = enabled
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}
