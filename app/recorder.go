package app

import (
	"log/slog"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/timer"
)

type intervalSaver interface {
	SaveInterval(iv *models.Interval) error
}

// recorder stores every interval that ends and keeps the status file in sync
// with the timer.
type recorder struct {
	db         intervalSaver
	log        *slog.Logger
	statusPath string
}

func newRecorder(db intervalSaver, statusPath string, log *slog.Logger) *recorder {
	return &recorder{
		db:         db,
		statusPath: statusPath,
		log:        log,
	}
}

// Watch handles events until the channel is closed.
func (r *recorder) Watch(events <-chan timer.Event) {
	for ev := range events {
		r.handle(ev)
	}
}

func (r *recorder) handle(ev timer.Event) {
	if err := status.Write(r.statusPath, status.FromEvent(ev)); err != nil {
		r.log.Warn("unable to update status file", "error", err)
	}

	iv := intervalFromEvent(ev)
	if iv == nil {
		return
	}

	if err := r.db.SaveInterval(iv); err != nil {
		r.log.Error(
			"unable to save interval",
			"start_time", iv.StartTime,
			"error", err,
		)
	}
}

// intervalFromEvent returns the interval that ended with ev, or nil if ev did
// not end one.
func intervalFromEvent(ev timer.Event) *models.Interval {
	if ev.Type != timer.EventSwitched && ev.Type != timer.EventStopped {
		return nil
	}

	if ev.PreviousStart.IsZero() {
		return nil
	}

	return &models.Interval{
		StartTime: ev.PreviousStart,
		EndTime:   ev.At,
		Mode:      ev.Previous,
		Long:      ev.PreviousLong,
		Planned:   ev.PreviousLength,
		Active:    ev.PreviousActive,
		Completed: ev.Type == timer.EventSwitched,
	}
}
