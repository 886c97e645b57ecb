package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after each session and break",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play a tone when a session or break ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session and break",
	}

	tickFlag = &cli.DurationFlag{
		Name:  "tick",
		Usage: "How often the timer checks for the end of an interval (10ms to 1s)",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include intervals started after this time (e.g. '2024-05-01' or '3 days ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include intervals started before this time (e.g. 'yesterday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the results as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	sessionFlag = &cli.Int64Flag{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "Work session length in minutes (1 to 60)",
	}

	breakFlag = &cli.Int64Flag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break length in minutes (1 to 60)",
	}

	longBreakFlag = &cli.BoolFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Double every fourth break. Use --long-break=false to disable",
	}

	lightModeFlag = &cli.BoolFlag{
		Name:  "light-mode",
		Usage: "Use colours suited to light terminals. Use --light-mode=false to disable",
	}
)
