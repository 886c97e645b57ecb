// Package settings provides the user preferences that govern the timer:
// session and break lengths, the long break policy, and the display theme.
// Preferences are clamped on write, persisted to a YAML file, and broadcast to
// listeners after every change.
package settings

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

const (
	minLength = time.Second
	maxLength = 60 * time.Minute

	minMinutes = 1
	maxMinutes = 60
)

// Preferences is an immutable snapshot of the user's settings.
type Preferences struct {
	SessionLength time.Duration
	BreakLength   time.Duration
	LongBreak     bool
	LightMode     bool
}

// Defaults returns the standard pomodoro recommendation: 25 minute sessions
// and 5 minute breaks.
func Defaults() Preferences {
	return Preferences{
		SessionLength: 25 * time.Minute,
		BreakLength:   5 * time.Minute,
	}
}

// Option configures a Provider.
type Option func(*Provider)

// WithFile persists every change to the YAML file at path.
func WithFile(path string) Option {
	return func(p *Provider) {
		p.path = path
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// Provider is a concurrency-safe store of Preferences. Reads always observe a
// complete snapshot.
type Provider struct {
	log       *slog.Logger
	path      string
	listeners []func(Preferences)
	prefs     Preferences
	mu        sync.RWMutex
	saveMu    sync.Mutex
}

// New returns a provider holding prefs.
func New(prefs Preferences, opts ...Option) *Provider {
	p := &Provider{
		prefs: prefs,
		log:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Preferences returns a snapshot of all settings.
func (p *Provider) Preferences() Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.prefs
}

// SessionLength returns the length of a work session.
func (p *Provider) SessionLength() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.prefs.SessionLength
}

// BreakLength returns the length of a regular break.
func (p *Provider) BreakLength() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.prefs.BreakLength
}

// LongBreakEnabled reports whether every fourth break is doubled.
func (p *Provider) LongBreakEnabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.prefs.LongBreak
}

// LightModeEnabled reports whether the light theme is selected.
func (p *Provider) LightModeEnabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.prefs.LightMode
}

// SetSessionLength sets the session length. See ClampLength for how out of
// range values are handled.
func (p *Provider) SetSessionLength(minutes, seconds int64) {
	d := ClampLength(minutes, seconds)

	p.update(func(prefs *Preferences) {
		prefs.SessionLength = d
	})
}

// SetBreakLength sets the break length. See ClampLength for how out of range
// values are handled.
func (p *Provider) SetBreakLength(minutes, seconds int64) {
	d := ClampLength(minutes, seconds)

	p.update(func(prefs *Preferences) {
		prefs.BreakLength = d
	})
}

// SetLongBreakEnabled turns long breaks on or off.
func (p *Provider) SetLongBreakEnabled(v bool) {
	p.update(func(prefs *Preferences) {
		prefs.LongBreak = v
	})
}

// ToggleLongBreak flips the long break setting and returns the new value.
func (p *Provider) ToggleLongBreak() bool {
	var v bool

	p.update(func(prefs *Preferences) {
		prefs.LongBreak = !prefs.LongBreak
		v = prefs.LongBreak
	})

	return v
}

// SetLightModeEnabled selects the light or dark theme.
func (p *Provider) SetLightModeEnabled(v bool) {
	p.update(func(prefs *Preferences) {
		prefs.LightMode = v
	})
}

// RestoreDefaultLengths resets the session and break lengths only.
func (p *Provider) RestoreDefaultLengths() {
	d := Defaults()

	p.update(func(prefs *Preferences) {
		prefs.SessionLength = d.SessionLength
		prefs.BreakLength = d.BreakLength
	})
}

// ResetDefaults resets every preference.
func (p *Provider) ResetDefaults() {
	p.update(func(prefs *Preferences) {
		*prefs = Defaults()
	})
}

// OnChange registers fn to be called with the new preferences after every
// change. fn runs on the goroutine that made the change.
func (p *Provider) OnChange(fn func(Preferences)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.listeners = append(p.listeners, fn)
}

func (p *Provider) update(fn func(*Preferences)) {
	p.mu.Lock()
	fn(&p.prefs)
	prefs := p.prefs
	listeners := slices.Clone(p.listeners)
	p.mu.Unlock()

	p.persist()

	for _, l := range listeners {
		l(prefs)
	}
}

// persist writes the latest snapshot. Writes are serialised so the file never
// ends up holding an older snapshot than the last completed write.
func (p *Provider) persist() {
	if p.path == "" {
		return
	}

	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	if err := Save(p.path, p.Preferences()); err != nil {
		p.log.Error("unable to persist settings", "path", p.path, "error", err)
	}
}

// ClampLength converts minutes and seconds into a length within the supported
// range. Minutes are bounded to [0, 60] and seconds to [0, 59]; the total is
// then bounded to [1s, 60m].
func ClampLength(minutes, seconds int64) time.Duration {
	minutes = min(max(minutes, 0), maxMinutes)
	seconds = min(max(seconds, 0), 59)

	d := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second

	return min(max(d, minLength), maxLength)
}

// ClampMinutes bounds whole-minute input from the user to [1, 60].
func ClampMinutes(v int64) int64 {
	return min(max(v, minMinutes), maxMinutes)
}
