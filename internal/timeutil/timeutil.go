// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60

	// keyLayout is RFC 3339 with a fixed-width fraction so that keys sort in
	// time order byte by byte.
	keyLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// layouts are tried before falling back to natural language parsing.
var layouts = []string{
	"2006-01-02 03:04:05 PM",
	"2006-01-02 03:04 PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in whole minutes and seconds.
// Fractions of a second are dropped.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := int(math.Floor(val))

	return total / secondsInAMinute, total % secondsInAMinute
}

// FormatRemaining renders a remaining duration as "MM:SS". Negative values are
// shown as zero since they only occur in the short window between expiry and
// the mode switch.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	m, s := SecsToMinsAndSecs(d.Seconds())

	return fmt.Sprintf("%02d:%02d", m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

// FromStr parses a date in one of the fixed layouts or in natural language
// (e.g. "2 hours ago", "yesterday").
func FromStr(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
	}

	dt, err := dateparser.Parse(nil, s)
	if err != nil {
		return time.Time{}, errParseDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
