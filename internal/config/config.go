// Package config handles configuration loading from YAML files and
// environment variables. Precedence: environment variables > config file >
// defaults.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML can carry human-readable values like
// "500ms" or "1s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Sampler SamplerConfig `yaml:"sampler"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	ListenAddr      string   `yaml:"listen_addr"`
	Mode            string   `yaml:"mode"` // gin mode: debug, release, test
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

// SamplerConfig holds the usage-sampler settings. Interval is both the
// refresh period and the staleness bound of CPU usage and network deltas.
type SamplerConfig struct {
	Interval Duration `yaml:"interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			Mode:            "release",
			ShutdownTimeout: Duration{10 * time.Second},
			AllowedOrigins:  []string{"*"},
		},
		Sampler: SamplerConfig{
			Interval: Duration{1 * time.Second},
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges it
// over the defaults. Environment variables take highest precedence.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Load reads configuration from a YAML file and merges it over the
// defaults. An empty path triggers auto-discovery via Locate; a missing
// file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Locate()
	}
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}
	return LoadFromBytes(data)
}

// Locate searches the standard config file paths and returns the first one
// found, or an empty string.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides, the highest
// precedence layer.
func applyEnvOverrides(cfg *Config) {
	if addr := os.Getenv("SYSSCOPE_LISTEN_ADDR"); addr != "" {
		cfg.Server.ListenAddr = addr
	}
	if mode := os.Getenv("SYSSCOPE_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if level := os.Getenv("SYSSCOPE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if interval := os.Getenv("SYSSCOPE_SAMPLER_INTERVAL"); interval != "" {
		if parsed, err := time.ParseDuration(interval); err == nil {
			cfg.Sampler.Interval = Duration{parsed}
		}
	}
}

// Validate checks that the configuration can actually run a server.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server listen address is required")
	}
	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Server.ListenAddr, err)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode %q (want debug, release or test)", c.Server.Mode)
	}
	if c.Sampler.Interval.Duration <= 0 {
		return fmt.Errorf("sampler interval must be positive (got %s)", c.Sampler.Interval)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	return nil
}
