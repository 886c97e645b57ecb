package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    *string
	Tick          time.Duration
	DisableNotify bool
	NoSound       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			DisableNotify: ctx.Bool("disable-notification"),
			NoSound:       ctx.Bool("no-sound"),
		}

		if ctx.IsSet("tick") {
			opts.Tick = ctx.Duration("tick")
		}

		// an explicitly empty command disables the one from the config file
		if ctx.IsSet("session-cmd") {
			cmd := ctx.String("session-cmd")
			opts.SessionCmd = &cmd
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoSound {
		c.Notifications.Sound = false
	}

	if opts.Tick != 0 {
		c.Timer.TickInterval = opts.Tick
	}

	if opts.SessionCmd != nil {
		c.Notifications.Cmd = *opts.SessionCmd
	}
}
