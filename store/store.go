// Package store connects to the data store and manages recorded intervals
package store

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveInterval stores a finished interval. An interval with the same start
	// time is overwritten.
	SaveInterval(iv *models.Interval) error
	// GetIntervals returns the intervals that started within [since, until] in
	// chronological order. A zero until means no upper bound.
	GetIntervals(since, until time.Time) ([]models.Interval, error)
	// DeleteIntervals deletes the intervals that started within [since, until]
	// and reports how many were removed.
	DeleteIntervals(since, until time.Time) (int, error)
	// Close ends the database connection
	Close() error
}
