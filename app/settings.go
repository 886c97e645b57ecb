package app

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/settings"
	"github.com/ayoisaiah/pomo/internal/ui"
)

// openSettings loads the preferences for the settings commands. Failures to
// persist changes are logged by the provider, so they are routed to the log
// file rather than discarded.
func openSettings(ctx *cli.Context) (*settings.Provider, func(), error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	logger, closer := newLogger(cfg)

	prefs, err := loadSettings(logger, false)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return prefs, func() { _ = closer.Close() }, nil
}

func onOff(b bool) string {
	if b {
		return ui.Green("on")
	}

	return ui.Red("off")
}

// settingsTable returns the rows of the settings table.
func settingsTable(prefs settings.Preferences) [][]string {
	return [][]string{
		{"SETTING", "VALUE"},
		{"Session length", prefs.SessionLength.String()},
		{"Break length", prefs.BreakLength.String()},
		{"Long breaks (every 4th break doubled)", onOff(prefs.LongBreak)},
		{"Light mode", onOff(prefs.LightMode)},
	}
}

func printSettings(ctx *cli.Context, prefs *settings.Provider) error {
	if err := ui.PrintTable(settingsTable(prefs.Preferences()), ctx.App.Writer); err != nil {
		return err
	}

	_, err := fmt.Fprintln(ctx.App.Writer, ui.Highlight(pathutil.SettingsFilePath()))

	return err
}

// showSettingsAction prints the current preferences.
func showSettingsAction(ctx *cli.Context) error {
	prefs, done, err := openSettings(ctx)
	if err != nil {
		return err
	}

	defer done()

	return printSettings(ctx, prefs)
}

// setSettingsAction applies the flags that were given and leaves the other
// preferences untouched.
func setSettingsAction(ctx *cli.Context) error {
	prefs, done, err := openSettings(ctx)
	if err != nil {
		return err
	}

	defer done()

	if ctx.NumFlags() == 0 {
		return errNoSettings
	}

	applySettingsFlags(ctx, prefs)

	slog.Info("settings updated", "preferences", prefs.Preferences())

	pterm.Success.Println("settings updated")

	return printSettings(ctx, prefs)
}

func applySettingsFlags(ctx *cli.Context, prefs *settings.Provider) {
	if ctx.IsSet("session") {
		prefs.SetSessionLength(settings.ClampMinutes(ctx.Int64("session")), 0)
	}

	if ctx.IsSet("break") {
		prefs.SetBreakLength(settings.ClampMinutes(ctx.Int64("break")), 0)
	}

	if ctx.IsSet("long-break") {
		prefs.SetLongBreakEnabled(ctx.Bool("long-break"))
	}

	if ctx.IsSet("light-mode") {
		prefs.SetLightModeEnabled(ctx.Bool("light-mode"))
	}
}

// resetSettingsAction restores every preference to its default.
func resetSettingsAction(ctx *cli.Context) error {
	prefs, done, err := openSettings(ctx)
	if err != nil {
		return err
	}

	defer done()

	prefs.ResetDefaults()

	pterm.Success.Println("settings restored to the defaults")

	return printSettings(ctx, prefs)
}

// editSettingsAction lets the user pick new values interactively.
func editSettingsAction(ctx *cli.Context) error {
	prefs, done, err := openSettings(ctx)
	if err != nil {
		return err
	}

	defer done()

	if err := settings.Prompt(prefs, false); err != nil {
		return err
	}

	return printSettings(ctx, prefs)
}
