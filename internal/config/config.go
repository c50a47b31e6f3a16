// SPDX-License-Identifier: MIT
// Package: graphpoet/internal/config
//
// config.go: YAML, .env and environment settings for the CLI.

// Package config loads the graphpoet CLI settings.
//
// Sources, lowest precedence first:
//
//  1. Default()
//  2. a YAML file (Load)
//  3. a .env file and the process environment (GRAPHPOET_* variables)
//  4. command-line flags, merged by the caller before Validate
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates the merged configuration failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvCorpus    = "GRAPHPOET_CORPUS"
	EnvGraph     = "GRAPHPOET_GRAPH"
	EnvCacheSize = "GRAPHPOET_CACHE_SIZE"
	EnvLogLevel  = "GRAPHPOET_LOG_LEVEL"
)

// Config is the full CLI configuration.
type Config struct {
	// Corpus is the path of the corpus text file.
	Corpus string `yaml:"corpus" validate:"required"`
	// Graph selects the graph implementation.
	Graph string `yaml:"graph" validate:"oneof=edges vertices"`
	// CacheSize bounds the bridge memo cache; 0 disables it.
	CacheSize int `yaml:"cache_size" validate:"gte=0"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Graph:     "vertices",
		CacheSize: 0,
		LogLevel:  "info",
	}
}

// Load returns Default() overlaid with the YAML file at path.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overlays the GRAPHPOET_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvCorpus); ok {
		cfg.Corpus = v
	}
	if v, ok := os.LookupEnv(EnvGraph); ok {
		cfg.Graph = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvCacheSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvCacheSize, v, err)
		}
		cfg.CacheSize = n
	}

	return nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
