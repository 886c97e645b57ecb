package config

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/logging"
)

var (
	minInterval = 10 * time.Millisecond
	maxInterval = 1 * time.Second
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateInterval("timer.tick_interval", c.Timer.TickInterval); err != nil {
		return err
	}

	if err := validateInterval(
		"display.refresh_interval",
		c.Display.RefreshInterval,
	); err != nil {
		return err
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func validateInterval(name string, d time.Duration) error {
	if d < minInterval || d > maxInterval {
		return errInvalidInterval.Fmt(name, minInterval, maxInterval, d)
	}

	return nil
}
