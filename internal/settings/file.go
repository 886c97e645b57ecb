package settings

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

type yamlSettings struct {
	SessionSeconds int64 `yaml:"session_length_seconds"`
	BreakSeconds   int64 `yaml:"break_length_seconds"`
	LongBreak      bool  `yaml:"long_break"`
	LightMode      bool  `yaml:"light_mode"`
}

// Exists reports whether a settings file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// Load reads preferences from the YAML file at path and returns a provider
// that writes changes back to it. A missing file yields the defaults.
func Load(path string, opts ...Option) (*Provider, error) {
	prefs := Defaults()

	rawData, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errReadSettings.Wrap(err)
	}

	if err == nil {
		var fileData yamlSettings

		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return nil, errParseSettings.Fmt(path).Wrap(err)
		}

		applyYAMLSettings(&prefs, fileData)
	}

	return New(prefs, append([]Option{WithFile(path)}, opts...)...), nil
}

// Save writes prefs to the YAML file at path.
func Save(path string, prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return errWriteSettings.Wrap(err)
	}

	fileData := yamlSettings{
		SessionSeconds: int64(prefs.SessionLength / time.Second),
		BreakSeconds:   int64(prefs.BreakLength / time.Second),
		LongBreak:      prefs.LongBreak,
		LightMode:      prefs.LightMode,
	}

	b, err := yaml.Marshal(fileData)
	if err != nil {
		return errWriteSettings.Wrap(err)
	}

	if err := os.WriteFile(path, b, osutil.FilePermission); err != nil {
		return errWriteSettings.Wrap(err)
	}

	return nil
}

// applyYAMLSettings copies valid values from the file. Lengths that are
// missing or zero keep their defaults; the rest are clamped.
func applyYAMLSettings(prefs *Preferences, fileData yamlSettings) {
	if fileData.SessionSeconds > 0 {
		prefs.SessionLength = clampSeconds(fileData.SessionSeconds)
	}

	if fileData.BreakSeconds > 0 {
		prefs.BreakLength = clampSeconds(fileData.BreakSeconds)
	}

	prefs.LongBreak = fileData.LongBreak
	prefs.LightMode = fileData.LightMode
}

func clampSeconds(s int64) time.Duration {
	return ClampLength(s/60, s%60)
}
