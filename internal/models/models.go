package models

import (
	"time"

	"github.com/ayoisaiah/pomo/timer"
)

// Interval is a finished session or break as stored in the database.
type Interval struct {
	// StartTime is when the interval began. It doubles as the database key.
	StartTime time.Time `json:"start_time"`
	// EndTime is when the interval expired or was cut short by a stop. Time
	// spent paused is included.
	EndTime time.Time     `json:"end_time"`
	Mode    timer.Mode    `json:"mode"`
	Planned time.Duration `json:"planned"`
	// Active is the time spent counting down, which excludes pauses.
	Active    time.Duration `json:"active"`
	Long      bool          `json:"long"`
	Completed bool          `json:"completed"`
}

// Paused returns the time the interval spent paused.
func (i *Interval) Paused() time.Duration {
	return max(i.EndTime.Sub(i.StartTime)-i.Active, 0)
}

// Label is the display name of the interval.
func (i *Interval) Label() string {
	if i.Mode == timer.Break && i.Long {
		return "Long break"
	}

	if i.Mode == timer.Break {
		return "Break"
	}

	return "Session"
}
