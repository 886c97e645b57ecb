package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/timer"
)

func summaryIntervals() []models.Interval {
	day1 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	return []models.Interval{
		{
			StartTime: day1,
			EndTime:   day1.Add(25 * time.Minute),
			Mode:      timer.Session,
			Active:    25 * time.Minute,
			Completed: true,
		},
		{
			StartTime: day1.Add(25 * time.Minute),
			EndTime:   day1.Add(30 * time.Minute),
			Mode:      timer.Break,
			Active:    5 * time.Minute,
			Completed: true,
		},
		{
			// paused for two hours before being stopped
			StartTime: day2,
			EndTime:   day2.Add(2*time.Hour + 10*time.Minute),
			Mode:      timer.Session,
			Active:    10 * time.Minute,
		},
		{
			StartTime: day2.Add(3 * time.Hour),
			EndTime:   day2.Add(3*time.Hour + 10*time.Minute),
			Mode:      timer.Break,
			Active:    10 * time.Minute,
			Long:      true,
			Completed: true,
		},
		{
			// stopped before any time elapsed
			StartTime: day2.Add(4 * time.Hour),
			EndTime:   day2.Add(4 * time.Hour),
			Mode:      timer.Session,
		},
	}
}

func TestComputeTotals(t *testing.T) {
	totals := computeTotals(summaryIntervals())

	assert.Equal(t, 35*time.Minute, totals.focusTime)
	assert.Equal(t, 15*time.Minute, totals.breakTime)
	assert.Equal(t, 1, totals.completed)
	assert.Equal(t, 1, totals.stopped)
	assert.Equal(t, 1, totals.longBreaks)

	assert.Equal(t, map[time.Time]time.Duration{
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local): 25 * time.Minute,
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local): 10 * time.Minute,
	}, totals.daily)
}

func TestComputeTotalsExcludesPauses(t *testing.T) {
	totals := computeTotals(summaryIntervals()[2:3])

	assert.Equal(t, 10*time.Minute, totals.focusTime)
	assert.Equal(t, 2*time.Hour, summaryIntervals()[2].Paused())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printSummary(&buf, summaryIntervals()))

	out := buf.String()

	assert.Contains(t, out, "35m0s")
	assert.Contains(t, out, "Mar 04, 2024")
	assert.Contains(t, out, "Mar 05, 2024")
}

func TestGetBarChartEmpty(t *testing.T) {
	chart, err := getBarChart(nil)

	require.NoError(t, err)
	assert.Empty(t, chart)
}
