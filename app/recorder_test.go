package app

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/settings"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/timer"
)

type fakeSaver struct {
	err   error
	saved []models.Interval
}

func (f *fakeSaver) SaveInterval(iv *models.Interval) error {
	f.saved = append(f.saved, *iv)
	return f.err
}

func newTestRecorder(t *testing.T, db intervalSaver) (*recorder, string) {
	t.Helper()

	statusPath := filepath.Join(t.TempDir(), "status.json")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newRecorder(db, statusPath, log), statusPath
}

var recorderStart = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

func TestIntervalFromEvent(t *testing.T) {
	cases := []struct {
		Want  *models.Interval
		Name  string
		Event timer.Event
	}{
		{
			Name:  "started",
			Event: timer.Event{Type: timer.EventStarted, At: recorderStart},
		},
		{
			Name:  "paused",
			Event: timer.Event{Type: timer.EventPaused, At: recorderStart},
		},
		{
			Name:  "stopped while idle",
			Event: timer.Event{Type: timer.EventStopped, At: recorderStart},
		},
		{
			Name: "session completed",
			Event: timer.Event{
				Type:           timer.EventSwitched,
				At:             recorderStart.Add(25 * time.Minute),
				Previous:       timer.Session,
				PreviousStart:  recorderStart,
				PreviousLength: 25 * time.Minute,
				PreviousActive: 25 * time.Minute,
				Mode:           timer.Break,
			},
			Want: &models.Interval{
				StartTime: recorderStart,
				EndTime:   recorderStart.Add(25 * time.Minute),
				Mode:      timer.Session,
				Planned:   25 * time.Minute,
				Active:    25 * time.Minute,
				Completed: true,
			},
		},
		{
			Name: "long break stopped early",
			Event: timer.Event{
				Type:           timer.EventStopped,
				At:             recorderStart.Add(3 * time.Minute),
				Previous:       timer.Break,
				PreviousLong:   true,
				PreviousStart:  recorderStart,
				PreviousLength: 10 * time.Minute,
				PreviousActive: 3 * time.Minute,
			},
			Want: &models.Interval{
				StartTime: recorderStart,
				EndTime:   recorderStart.Add(3 * time.Minute),
				Mode:      timer.Break,
				Long:      true,
				Planned:   10 * time.Minute,
				Active:    3 * time.Minute,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, intervalFromEvent(tc.Event))
		})
	}
}

func TestRecorderWatch(t *testing.T) {
	db := &fakeSaver{}
	rec, statusPath := newTestRecorder(t, db)

	events := make(chan timer.Event, 3)

	events <- timer.Event{
		Type:          timer.EventStarted,
		At:            recorderStart,
		IntervalStart: recorderStart,
		EndTime:       recorderStart.Add(25 * time.Minute),
		Mode:          timer.Session,
	}
	events <- timer.Event{
		Type:           timer.EventSwitched,
		At:             recorderStart.Add(25 * time.Minute),
		EndTime:        recorderStart.Add(30 * time.Minute),
		Mode:           timer.Break,
		BreakCount:     1,
		Previous:       timer.Session,
		PreviousStart:  recorderStart,
		PreviousLength: 25 * time.Minute,
	}
	events <- timer.Event{
		Type:           timer.EventStopped,
		At:             recorderStart.Add(27 * time.Minute),
		Previous:       timer.Break,
		PreviousStart:  recorderStart.Add(25 * time.Minute),
		PreviousLength: 5 * time.Minute,
		PreviousActive: 2 * time.Minute,
	}

	close(events)

	rec.Watch(events)

	require.Len(t, db.saved, 2)
	assert.True(t, db.saved[0].Completed)
	assert.Equal(t, timer.Session, db.saved[0].Mode)
	assert.False(t, db.saved[1].Completed)
	assert.Equal(t, 2*time.Minute, db.saved[1].Active)

	st, err := status.Read(statusPath)
	require.NoError(t, err)
	assert.False(t, st.Running)
}

func TestRecorderContinuesAfterSaveError(t *testing.T) {
	db := &fakeSaver{err: errors.New("disk full")}
	rec, statusPath := newTestRecorder(t, db)

	rec.handle(timer.Event{
		Type:           timer.EventSwitched,
		At:             recorderStart.Add(25 * time.Minute),
		EndTime:        recorderStart.Add(30 * time.Minute),
		Mode:           timer.Break,
		BreakCount:     1,
		Previous:       timer.Session,
		PreviousStart:  recorderStart,
		PreviousLength: 25 * time.Minute,
	})

	assert.Len(t, db.saved, 1)

	st, err := status.Read(statusPath)
	require.NoError(t, err)
	assert.True(t, st.Running)
	assert.Equal(t, timer.Break, st.Mode)
	assert.Equal(t, 1, st.BreakCount)
}

// nextEvent waits for an event of the given type, skipping any others.
func nextEvent(t *testing.T, events <-chan timer.Event, typ timer.EventType) timer.Event {
	t.Helper()

	for {
		select {
		case ev := <-events:
			if ev.Type == typ {
				return ev
			}
		case <-time.After(time.Second):
			require.FailNow(t, "timed out waiting for event", typ)
		}
	}
}

func TestPausedTimeIsNotRecorded(t *testing.T) {
	clock := clockwork.NewFakeClockAt(recorderStart)

	tm := timer.New(settings.New(settings.Defaults()), timer.WithClock(clock))
	t.Cleanup(tm.Shutdown)

	events := tm.Subscribe(8)

	tm.Start()
	clock.Advance(10 * time.Minute)
	tm.Pause()
	clock.Advance(2 * time.Hour)
	tm.Resume()
	clock.Advance(5 * time.Minute)
	tm.Stop()

	iv := intervalFromEvent(nextEvent(t, events, timer.EventStopped))
	require.NotNil(t, iv)

	assert.Equal(t, 15*time.Minute, iv.Active)
	assert.Equal(t, 2*time.Hour, iv.Paused())
	assert.False(t, iv.Completed)

	totals := computeTotals([]models.Interval{*iv})
	assert.Equal(t, 15*time.Minute, totals.focusTime)
}

func TestRecorderBufferAbsorbsBurst(t *testing.T) {
	tm := timer.New(
		settings.New(settings.Defaults()),
		timer.WithClock(clockwork.NewFakeClockAt(recorderStart)),
	)

	events := tm.Subscribe(recorderBuffer)

	// a user mashing start and stop while the recorder is stuck on a write
	const cycles = 200

	for range cycles {
		tm.Start()
		tm.Stop()
	}

	tm.Shutdown()

	var stopped int

	for ev := range events {
		if intervalFromEvent(ev) != nil {
			stopped++
		}
	}

	assert.Equal(t, cycles, stopped)
}
