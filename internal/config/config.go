package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries process configuration. The upstream API contract needs none
// of it (the API is public and the base URL is fixed); these knobs exist for
// operators and tests.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       DefaultLogLevel,
	}
}

// Load resolves configuration: defaults, then the optional YAML file, then
// environment overrides.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("LY_GATEWAY_CONFIG")
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("LY_GATEWAY_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LY_GATEWAY_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parsing LY_GATEWAY_TIMEOUT_SECONDS: %w", err)
		}
		cfg.TimeoutSeconds = n
	}
	if v := os.Getenv("LY_GATEWAY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Timeout returns the per-call upstream timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
