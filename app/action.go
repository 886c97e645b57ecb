package app

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/alert"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/logging"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/settings"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
	"github.com/ayoisaiah/pomo/tui"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"

	// alertBuffer is the subscription buffer of the alerter. A dropped alert
	// is harmless.
	alertBuffer = 16

	// recorderBuffer holds far more transitions than a user can make between
	// two database writes, since a dropped event loses a history row.
	recorderBuffer = 1024
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file and applies the global flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// newLogger opens the log file and installs the logger as the default.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	level, _ := logging.ParseLevel(cfg.Log.Level)

	logger, closer := logging.New(pathutil.LogFilePath(), level)

	slog.SetDefault(logger)

	return logger, closer
}

// loadSettings reads the user's preferences. On the first run the user is
// asked for them when prompt is true.
func loadSettings(logger *slog.Logger, prompt bool) (*settings.Provider, error) {
	path := pathutil.SettingsFilePath()

	firstRun := !settings.Exists(path)

	prefs, err := settings.Load(path, settings.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if firstRun && prompt {
		if err := settings.Prompt(prefs, true); err != nil {
			return nil, err
		}
	}

	return prefs, nil
}

// watch runs fn on its own goroutine until events is closed.
func watch(
	wg *sync.WaitGroup,
	events <-chan timer.Event,
	fn func(<-chan timer.Event),
) {
	wg.Add(1)

	go func() {
		defer wg.Done()
		fn(events)
	}()
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, closer := newLogger(cfg)
	defer closer.Close()

	logger.Debug("resolved config", "config", cfg.Dump())

	prefs, err := loadSettings(logger, true)
	if err != nil {
		return err
	}

	prefs.OnChange(func(p settings.Preferences) {
		logger.Debug("settings changed", "preferences", p)
	})

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	t := timer.New(
		prefs,
		timer.WithTickInterval(cfg.Timer.TickInterval),
		timer.WithLogger(logger),
	)

	rec := newRecorder(db, pathutil.StatusFilePath(), logger)

	al := alert.New(alert.Options{
		Notify: cfg.Notifications.Enabled,
		Sound:  cfg.Notifications.Sound,
		Cmd:    cfg.Notifications.Cmd,
	}, logger)

	var wg sync.WaitGroup

	watch(&wg, t.Subscribe(recorderBuffer), rec.Watch)
	watch(&wg, t.Subscribe(alertBuffer), al.Watch)

	ui.DarkTheme = !prefs.LightModeEnabled()

	m := tui.New(t, prefs, tui.Options{
		RefreshInterval: cfg.Display.RefreshInterval,
		TwentyFourHour:  cfg.Display.TwentyFourHour,
		LightMode:       prefs.LightModeEnabled(),
	})

	_, err = tea.NewProgram(m).Run()

	// the final stop event is recorded before the database is closed
	t.Shutdown()
	wg.Wait()

	logger.Info("exiting pomo")

	return err
}

// statusAction handles the status command and prints the status of the currently
// running timer.
func statusAction(ctx *cli.Context) error {
	return status.Report(
		ctx.App.Writer,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// editConfigAction handles the edit-config command which opens the pomo config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// writes the default file if it is missing
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.Path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}
