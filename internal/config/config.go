// Package config loads the optional ~/.ueserver/config.toml.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lpmwfx/UEServer/internal/logging"
	"github.com/lpmwfx/UEServer/internal/paths"
)

// Config is the top-level ueserver configuration.
type Config struct {
	Client ClientConfig `toml:"client"`
	Log    LogConfig    `toml:"log"`
}

// ClientConfig holds defaults for outbound RPC calls (uectl, MCP bridge).
type ClientConfig struct {
	Host      string `toml:"host"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Path       string `toml:"path"`
	Debug      bool   `toml:"debug"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	lc := logging.DefaultConfig()
	return &Config{
		Client: ClientConfig{
			Host:      "127.0.0.1",
			TimeoutMS: 2000,
		},
		Log: LogConfig{
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAgeDays,
		},
	}
}

// Load reads the config file and returns the parsed Config.
// A missing file is not an error and yields Default().
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads and parses a config file at the given path. Fields absent
// from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the client call timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.Client.TimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Client.TimeoutMS) * time.Millisecond
}

// LoggingConfig converts the log section for logging.Init.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		Path:       c.Log.Path,
		Debug:      c.Log.Debug,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}
