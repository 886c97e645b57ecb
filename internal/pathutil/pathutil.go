// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

const envName = "POMO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir        string
	configFileName   string
	settingsFileName string
	dbFileName       string
	statusFileName   string
	logFileName      string

	// Computed absolute paths
	configFilePath   string
	settingsFilePath string
	dbFilePath       string
	statusFilePath   string
	logFilePath      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:        "pomo",
			configFileName:   "config.yml",
			settingsFileName: "settings.yml",
			dbFileName:       "pomo.db",
			statusFileName:   "status.json",
			logFileName:      "pomo.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func SettingsFilePath() string {
	return Must().settingsFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.settingsFileName = fmt.Sprintf("settings_%s.yml", env)
		p.dbFileName = fmt.Sprintf("pomo_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("pomo_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving config file: %w", err)
	}

	p.settingsFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.settingsFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving settings file: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	if err = os.MkdirAll(dataDir, osutil.DirPermission); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
