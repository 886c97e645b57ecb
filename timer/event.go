package timer

import "time"

// EventType identifies the transition that produced an Event.
type EventType string

const (
	EventStarted  EventType = "started"
	EventPaused   EventType = "paused"
	EventResumed  EventType = "resumed"
	EventStopped  EventType = "stopped"
	EventSwitched EventType = "switched"
)

// Event describes a state transition of the timer. Events are delivered to
// subscribers on a best-effort basis: a subscriber whose buffer is full misses
// the event.
type Event struct {
	At            time.Time
	IntervalStart time.Time
	EndTime       time.Time
	// PreviousStart, PreviousLength and PreviousActive describe the interval
	// that just ended. They are only set for EventSwitched and EventStopped.
	PreviousStart  time.Time
	Type           EventType
	Length         time.Duration
	PreviousLength time.Duration
	// PreviousActive is the time the ended interval spent counting down. Time
	// spent paused is excluded.
	PreviousActive time.Duration
	Remaining      time.Duration
	BreakCount     int
	Mode           Mode
	Previous       Mode
	Long           bool
	PreviousLong   bool
	Paused         bool
}

// Snapshot is a consistent view of the timer taken under a single lock.
type Snapshot struct {
	EndTime    time.Time
	Remaining  time.Duration
	Length     time.Duration
	BreakCount int
	Mode       Mode
	Running    bool
	Paused     bool
	Long       bool
}

// Elapsed returns the fraction of the current interval that has elapsed,
// bounded to [0, 1].
func (s Snapshot) Elapsed() float64 {
	if s.Length <= 0 {
		return 0
	}

	f := 1 - float64(s.Remaining)/float64(s.Length)

	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}

	return f
}
