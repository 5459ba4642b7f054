// Package config loads the host program settings from an optional YAML file
// and the environment. Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvHistory    = "CMDLINE_HISTORY"
	EnvHistoryKey = "CMDLINE_HISTORY_KEY"
)

// DefaultHistoryPath is used when neither the file, the environment nor a flag set one.
const DefaultHistoryPath = "/tmp/history.txt"

// Config is the host program configuration.
type Config struct {
	History   string        `mapstructure:"history"`
	Prompt    string        `mapstructure:"prompt"`
	Async     bool          `mapstructure:"async"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Ticker    bool          `mapstructure:"ticker"`
	MultiLine bool          `mapstructure:"multi_line"`
	KeyCodes  bool          `mapstructure:"key_codes"`

	Log      LogConfig      `mapstructure:"log"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Security SecurityConfig `mapstructure:"security"`
}

// SecurityConfig protects saved history.
type SecurityConfig struct {
	// Key is a base64 AES-256 key; when set, entries are stored encrypted.
	Key string `mapstructure:"key"`
	// Redact lists patterns of command names whose arguments are masked in saved history.
	Redact []string `mapstructure:"redact"`
}

// LogConfig selects the log level. Quiet discards logs entirely.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Quiet bool   `mapstructure:"quiet"`
}

// RedisConfig enables the shared history store when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// MetricsConfig enables the /metrics endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: DefaultHistoryPath,
		Prompt:  "> ",
		Timeout: time.Second,
		Log:     LogConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if any) and
// then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	ApplyEnv(&cfg, os.Getenv)
	return cfg, nil
}

// Decode overlays the YAML document data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// ApplyEnv applies environment overrides read through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvHistory)); v != "" {
		cfg.History = v
	}
	if v := strings.TrimSpace(getenv(EnvHistoryKey)); v != "" {
		cfg.Security.Key = v
	}
}
