// Package timer operates the pomo interval timer. It alternates between work
// sessions and breaks against an absolute end time, so scheduling jitter in the
// periodic tick never accumulates as drift.
package timer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTickInterval is how often the timer checks for interval expiry.
const DefaultTickInterval = 50 * time.Millisecond

// Settings supplies interval lengths and the long break policy. Values are
// read at the moment each interval begins and are never cached by the timer.
// Implementations are expected to validate and clamp what they return.
type Settings interface {
	SessionLength() time.Duration
	BreakLength() time.Duration
	LongBreakEnabled() bool
	SetSessionLength(minutes, seconds int64)
	SetBreakLength(minutes, seconds int64)
	RestoreDefaultLengths()
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the system clock.
func WithClock(c clockwork.Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithTickInterval sets how often expiry is checked.
func WithTickInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.tickInterval = d
		}
	}
}

// WithLogger sets the logger used for transitions.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		if l != nil {
			t.log = l
		}
	}
}

// Timer is a work/break interval timer. All methods are safe for concurrent
// use. Control methods never fail: calls that are invalid for the current
// state are no-ops.
type Timer struct {
	clock    clockwork.Clock
	settings Settings
	log      *slog.Logger
	stopCh   chan struct{}

	endTime       time.Time
	pauseStart    time.Time
	intervalStart time.Time

	subscribers []chan Event

	wg             sync.WaitGroup
	tickInterval   time.Duration
	intervalLength time.Duration
	// gen identifies the current tick task. Ticks from a cancelled task carry
	// an older generation and are ignored.
	gen        uint64
	breakCount int
	mu         sync.Mutex
	mode       Mode
	running    bool
	paused     bool
	long       bool
	closed     bool
}

// New creates an idle timer in session mode.
func New(settings Settings, opts ...Option) *Timer {
	t := &Timer{
		settings:     settings,
		clock:        clockwork.NewRealClock(),
		log:          slog.New(slog.DiscardHandler),
		tickInterval: DefaultTickInterval,
		mode:         Session,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins a new session and the periodic tick. It does nothing if the
// timer is already running or has been shut down.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.closed {
		return
	}

	now := t.clock.Now()

	t.mode = Session
	t.running = true
	t.paused = false
	t.long = false
	t.beginIntervalLocked(now, t.settings.SessionLength())

	t.gen++
	t.stopCh = make(chan struct{})

	t.wg.Add(1)

	go t.loop(t.gen, t.stopCh)

	t.log.Debug("timer started", "end_time", t.endTime)

	t.emitLocked(t.eventLocked(EventStarted, now))
}

// Pause freezes the current interval.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.paused {
		return
	}

	now := t.clock.Now()

	t.pauseStart = now
	t.paused = true

	t.log.Debug("timer paused", "remaining", t.remainingLocked(now))

	t.emitLocked(t.eventLocked(EventPaused, now))
}

// Resume continues a paused interval. The end time moves forward by exactly
// the time spent paused.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || !t.paused {
		return
	}

	now := t.clock.Now()

	t.endTime = t.endTime.Add(now.Sub(t.pauseStart))
	t.paused = false

	t.log.Debug("timer resumed", "end_time", t.endTime)

	t.emitLocked(t.eventLocked(EventResumed, now))
}

// Stop cancels the tick and returns the timer to idle. The break count is
// cleared. After Stop returns, no tick from the cancelled run can change the
// timer's state.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked(t.clock.Now())
}

// Reset stops the timer and restores the default session and break lengths.
// Both happen under the lock, so a concurrent Start sees either the old run or
// the restored lengths.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked(t.clock.Now())

	t.settings.RestoreDefaultLengths()

	t.log.Debug("timer reset")
}

// Shutdown stops the timer, waits for the tick task to exit and closes all
// subscriptions. Every later control call is a no-op.
func (t *Timer) Shutdown() {
	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()
		return
	}

	t.stopLocked(t.clock.Now())
	t.closed = true

	subscribers := t.subscribers
	t.subscribers = nil

	t.mu.Unlock()

	t.wg.Wait()

	for _, ch := range subscribers {
		close(ch)
	}

	t.log.Debug("timer shut down")
}

// Subscribe returns a channel that receives every subsequent transition.
// Delivery never blocks the timer, so events are dropped when the buffer is
// full. The channel is closed by Shutdown.
func (t *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Event, buffer)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		close(ch)
		return ch
	}

	t.subscribers = append(t.subscribers, ch)

	return ch
}

// RemainingTime reports the time left in the current interval. When idle, it
// is the full configured length of the current mode. It may be briefly
// negative between expiry and the tick that switches modes.
func (t *Timer) RemainingTime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.remainingLocked(t.clock.Now())
}

// Mode returns the current mode.
func (t *Timer) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.mode
}

// IsRunning reports whether the timer is active or paused.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// IsPaused reports whether the timer is paused.
func (t *Timer) IsPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.paused
}

// BreakCount returns the number of breaks begun since the timer was last
// started.
func (t *Timer) BreakCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.breakCount
}

// Snapshot returns all observable state at once.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()

	s := Snapshot{
		Mode:       t.mode,
		Running:    t.running,
		Paused:     t.paused,
		Long:       t.long,
		BreakCount: t.breakCount,
		Remaining:  t.remainingLocked(now),
		Length:     t.lengthOfLocked(t.mode),
	}

	if t.running {
		s.Length = t.intervalLength
		s.EndTime = t.endTime
	}

	return s
}

// SetSessionLength updates the session length. A running session keeps its
// current end time; the new length applies from the next session.
func (t *Timer) SetSessionLength(minutes, seconds int64) {
	t.settings.SetSessionLength(minutes, seconds)
}

// SetBreakLength updates the break length from the next break onwards.
func (t *Timer) SetBreakLength(minutes, seconds int64) {
	t.settings.SetBreakLength(minutes, seconds)
}

// SessionLength returns the configured session length.
func (t *Timer) SessionLength() time.Duration {
	return t.settings.SessionLength()
}

// BreakLength returns the configured break length.
func (t *Timer) BreakLength() time.Duration {
	return t.settings.BreakLength()
}

// loop runs the tick task for a single run of the timer.
func (t *Timer) loop(gen uint64, stop <-chan struct{}) {
	defer t.wg.Done()

	ticker := t.clock.NewTicker(t.tickInterval)
	defer ticker.Stop()

	t.tick(gen)

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			t.tick(gen)
		}
	}
}

// tick checks the current interval for expiry.
func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || gen != t.gen || t.paused {
		return
	}

	now := t.clock.Now()
	if now.Before(t.endTime) {
		return
	}

	t.switchModeLocked(now)
}

func (t *Timer) switchModeLocked(now time.Time) {
	prev := t.eventLocked(EventSwitched, now)
	active := t.activeLocked(now)

	t.mode = t.mode.toggle()
	t.long = false

	base := t.settings.SessionLength()

	if t.mode == Break {
		t.breakCount++

		base = t.settings.BreakLength()

		if t.settings.LongBreakEnabled() && isLongBreak(t.breakCount) {
			base *= 2
			t.long = true
		}
	}

	t.beginIntervalLocked(now, base)

	t.log.Info(
		"interval switched",
		"mode", t.mode,
		"break_count", t.breakCount,
		"long", t.long,
		"length", base,
	)

	ev := t.eventLocked(EventSwitched, now)
	ev.Previous = prev.Mode
	ev.PreviousLong = prev.Long
	ev.PreviousStart = prev.IntervalStart
	ev.PreviousLength = prev.Length
	ev.PreviousActive = active

	t.emitLocked(ev)
}

func (t *Timer) stopLocked(now time.Time) {
	if !t.running {
		return
	}

	ev := t.eventLocked(EventStopped, now)
	ev.Previous = ev.Mode
	ev.PreviousLong = ev.Long
	ev.PreviousStart = ev.IntervalStart
	ev.PreviousLength = ev.Length
	ev.PreviousActive = t.activeLocked(now)

	t.running = false
	t.paused = false
	t.long = false
	t.breakCount = 0

	close(t.stopCh)
	t.stopCh = nil
	t.gen++

	ev.BreakCount = 0
	ev.Remaining = t.remainingLocked(now)

	t.log.Debug("timer stopped", "mode", t.mode)

	t.emitLocked(ev)
}

func (t *Timer) beginIntervalLocked(now time.Time, length time.Duration) {
	t.intervalStart = now
	t.intervalLength = length
	t.endTime = now.Add(length)
}

func (t *Timer) remainingLocked(now time.Time) time.Duration {
	switch {
	case !t.running:
		return t.lengthOfLocked(t.mode)
	case t.paused:
		return t.endTime.Sub(t.pauseStart)
	}

	return t.endTime.Sub(now)
}

// activeLocked returns how much of the current interval has elapsed outside of
// pauses, bounded to [0, intervalLength].
func (t *Timer) activeLocked(now time.Time) time.Duration {
	if !t.running {
		return 0
	}

	active := t.intervalLength - t.remainingLocked(now)

	return min(max(active, 0), t.intervalLength)
}

func (t *Timer) lengthOfLocked(m Mode) time.Duration {
	if m == Break {
		return t.settings.BreakLength()
	}

	return t.settings.SessionLength()
}

func (t *Timer) eventLocked(typ EventType, now time.Time) Event {
	return Event{
		Type:          typ,
		At:            now,
		Mode:          t.mode,
		BreakCount:    t.breakCount,
		Long:          t.long,
		Length:        t.intervalLength,
		IntervalStart: t.intervalStart,
		EndTime:       t.endTime,
		Remaining:     t.remainingLocked(now),
		Paused:        t.paused,
	}
}

func (t *Timer) emitLocked(ev Event) {
	for _, ch := range t.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
