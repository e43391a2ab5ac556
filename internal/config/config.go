// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Controller ControllerConfig `mapstructure:"controller"`
	Dimming    DimmingConfig    `mapstructure:"dimming"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ControllerConfig contains the native session settings
type ControllerConfig struct {
	// SettleIntervalMs is how long queries wait for the RPC callback before
	// reading the snapshot. The stock firmware answers well within 500ms.
	SettleIntervalMs int `mapstructure:"settle_interval_ms"`
}

// DimmingConfig contains dimming adjustment settings
type DimmingConfig struct {
	// Step is the percentage moved by `dimming up` and `dimming down`.
	Step int `mapstructure:"step"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Overrides LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Controller: ControllerConfig{
			SettleIntervalMs: 500,
		},
		Dimming: DimmingConfig{
			Step: 10,
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("splendctl")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "splendctl"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetDefault("controller.settle_interval_ms", DefaultConfig.Controller.SettleIntervalMs)
	viper.SetDefault("dimming.step", DefaultConfig.Dimming.Step)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		defaults := DefaultConfig
		return &defaults
	}
	return cfg
}

// SettleInterval returns the configured settle interval as a duration.
func (c *Config) SettleInterval() time.Duration {
	return time.Duration(c.Controller.SettleIntervalMs) * time.Millisecond
}
