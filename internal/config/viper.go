package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTickInterval         = "timer.tick_interval"
	keyRefreshInterval      = "display.refresh_interval"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keySessionCmd           = "notifications.cmd"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath. A file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		c.Path = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	d := Defaults()

	v.SetDefault(keyTickInterval, d.Timer.TickInterval.String())
	v.SetDefault(keyRefreshInterval, d.Display.RefreshInterval.String())
	v.SetDefault(keyTwentyFourHour, d.Display.TwentyFourHour)
	v.SetDefault(keyNotificationsEnabled, d.Notifications.Enabled)
	v.SetDefault(keyNotificationSound, d.Notifications.Sound)
	v.SetDefault(keySessionCmd, d.Notifications.Cmd)
	v.SetDefault(keyLogLevel, d.Log.Level)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Fmt(c.Path).Wrap(err)
	}

	return nil
}
