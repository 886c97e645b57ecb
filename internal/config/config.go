// Package config loads the pomo configuration file and applies command-line
// overrides to it
package config

import (
	"time"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Config holds all configuration settings
	Config struct {
		Log           LogConfig          `mapstructure:"log"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Path          string             `mapstructure:"-"`
		Display       DisplayConfig      `mapstructure:"display"`
		Timer         TimerConfig        `mapstructure:"timer"`
	}

	// TimerConfig holds timer engine settings
	TimerConfig struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		RefreshInterval time.Duration `mapstructure:"refresh_interval"`
		TwentyFourHour  bool          `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
		Sound   bool   `mapstructure:"sound"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

// Defaults returns the configuration used when no file or flag says otherwise.
func Defaults() *Config {
	return &Config{
		Timer: TimerConfig{
			TickInterval: 50 * time.Millisecond,
		},
		Display: DisplayConfig{
			RefreshInterval: 50 * time.Millisecond,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// New creates a new Config with default values, applies options and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Defaults()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Dump renders the resolved configuration for debug logs.
func (c *Config) Dump() string {
	return spew.Sdump(c)
}
