// Package status records the state of the running timer on disk so that other
// processes can report on it
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/timer"
)

// probeTimeout is how long Report waits for the database lock before
// concluding that another instance holds it.
const probeTimeout = 100 * time.Millisecond

// Status is the persisted view of the timer.
type Status struct {
	EndTime time.Time `json:"end_time"`
	// Remaining is only meaningful while paused.
	Remaining  time.Duration `json:"remaining"`
	BreakCount int           `json:"break_count"`
	Mode       timer.Mode    `json:"mode"`
	Running    bool          `json:"running"`
	Paused     bool          `json:"paused"`
	Long       bool          `json:"long"`
}

// FromEvent builds the status that follows a timer transition.
func FromEvent(ev timer.Event) Status {
	s := Status{
		Mode:       ev.Mode,
		BreakCount: ev.BreakCount,
		Long:       ev.Long,
		Paused:     ev.Paused,
		Running:    ev.Type != timer.EventStopped,
	}

	if s.Running {
		s.EndTime = ev.EndTime
	}

	if s.Paused {
		s.Remaining = ev.Remaining
	}

	return s
}

// Label names the current interval, e.g. "[Break 2]".
func (s Status) Label() string {
	switch {
	case s.Mode == timer.Break && s.Long:
		return "[Long break]"
	case s.Mode == timer.Break:
		return fmt.Sprintf("[Break %d]", s.BreakCount)
	}

	return "[Session]"
}

// Line renders the status as it is printed by the status command. An idle
// timer renders as an empty string.
func (s Status) Line(now time.Time) string {
	if !s.Running {
		return ""
	}

	if s.Paused {
		return fmt.Sprintf(
			"[Paused] %s: %s",
			s.Label(),
			timeutil.FormatRemaining(s.Remaining),
		)
	}

	return fmt.Sprintf(
		"%s: %s",
		s.Label(),
		timeutil.FormatRemaining(s.EndTime.Sub(now)),
	)
}

// Write replaces the status file at path.
func Write(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, b, osutil.FilePermission); err != nil {
		return errWriteStatus.Wrap(err)
	}

	return nil
}

// Read loads the status file at path.
func Read(path string) (Status, error) {
	var s Status

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	if err := json.Unmarshal(b, &s); err != nil {
		return s, errParseStatus.Fmt(path).Wrap(err)
	}

	return s, nil
}

// Report writes the status of the running timer to w. Nothing is written
// unless another process holds the database lock, since the status file is
// stale otherwise.
func Report(w io.Writer, dbPath, statusPath string, now time.Time) error {
	running, err := locked(dbPath)
	if err != nil || !running {
		return err
	}

	s, err := Read(statusPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	line := s.Line(now)
	if line == "" {
		return nil
	}

	_, err = fmt.Fprintln(w, line)

	return err
}

func locked(dbPath string) (bool, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	db, err := bolt.Open(dbPath, osutil.DBPermission, &bolt.Options{
		Timeout:  probeTimeout,
		ReadOnly: true,
	})
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}

	return false, err
}
