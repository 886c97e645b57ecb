// Package app defines the pomo command-line application
package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	lipgloss.SetColorProfile(termenv.Ascii)

	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pomo",
		Usage: `
		Pomo is an interval timer for the command-line. It alternates between
		work sessions and breaks, and can double every fourth break.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:  "history",
				Usage: "List recorded sessions and breaks. Defaults to the past 7 days",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					jsonFlag,
				},
				Action: historyAction,
				Subcommands: []*cli.Command{
					{
						Name:  "delete",
						Usage: "Delete recorded sessions and breaks",
						Flags: []cli.Flag{
							sinceFlag,
							untilFlag,
							yesFlag,
						},
						Action: deleteHistoryAction,
					},
				},
			},
			{
				Name:   "settings",
				Usage:  "Show the timer settings",
				Action: showSettingsAction,
				Subcommands: []*cli.Command{
					{
						Name:  "set",
						Usage: "Change one or more settings",
						Flags: []cli.Flag{
							sessionFlag,
							breakFlag,
							longBreakFlag,
							lightModeFlag,
						},
						Action: setSettingsAction,
					},
					{
						Name:   "reset",
						Usage:  "Restore the default settings",
						Action: resetSettingsAction,
					},
					{
						Name:   "edit",
						Usage:  "Change the settings interactively",
						Action: editSettingsAction,
					},
				},
			},
		},
		Flags: []cli.Flag{
			disableNotificationFlag,
			noSoundFlag,
			sessionCmdFlag,
			tickFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
