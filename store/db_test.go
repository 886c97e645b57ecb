package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/timer"
)

var base = time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pomo.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, path
}

func sampleIntervals() []models.Interval {
	return []models.Interval{
		{
			StartTime: base,
			EndTime:   base.Add(25 * time.Minute),
			Mode:      timer.Session,
			Planned:   25 * time.Minute,
			Completed: true,
		},
		{
			StartTime: base.Add(25 * time.Minute),
			EndTime:   base.Add(30 * time.Minute),
			Mode:      timer.Break,
			Planned:   5 * time.Minute,
			Completed: true,
		},
		{
			StartTime: base.Add(30*time.Minute + 500*time.Millisecond),
			EndTime:   base.Add(40 * time.Minute),
			Mode:      timer.Session,
			Planned:   25 * time.Minute,
		},
		{
			StartTime: base.Add(24 * time.Hour),
			EndTime:   base.Add(24*time.Hour + 10*time.Minute),
			Mode:      timer.Break,
			Planned:   10 * time.Minute,
			Long:      true,
			Completed: true,
		},
	}
}

func seed(t *testing.T, c *Client) []models.Interval {
	t.Helper()

	intervals := sampleIntervals()

	// insert out of order; reads must come back sorted by start time
	for i := len(intervals) - 1; i >= 0; i-- {
		require.NoError(t, c.SaveInterval(&intervals[i]))
	}

	return intervals
}

func TestGetIntervals(t *testing.T) {
	c, _ := newTestClient(t)
	all := seed(t, c)

	cases := []struct {
		Since time.Time
		Until time.Time
		Name  string
		Want  []models.Interval
	}{
		{
			Name: "everything",
			Want: all,
		},
		{
			Name:  "same day",
			Since: base,
			Until: base.Add(time.Hour),
			Want:  all[:3],
		},
		{
			Name:  "bounds are inclusive",
			Since: base.Add(25 * time.Minute),
			Until: base.Add(30*time.Minute + 500*time.Millisecond),
			Want:  all[1:3],
		},
		{
			Name:  "open ended",
			Since: base.Add(time.Hour),
			Want:  all[3:],
		},
		{
			Name:  "empty range",
			Since: base.Add(2 * time.Hour),
			Until: base.Add(3 * time.Hour),
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := c.GetIntervals(tc.Since, tc.Until)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Fatalf("GetIntervals() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveIntervalOverwrites(t *testing.T) {
	c, _ := newTestClient(t)

	iv := models.Interval{
		StartTime: base,
		EndTime:   base.Add(10 * time.Minute),
		Mode:      timer.Session,
		Planned:   25 * time.Minute,
	}

	require.NoError(t, c.SaveInterval(&iv))

	iv.EndTime = base.Add(25 * time.Minute)
	iv.Completed = true

	require.NoError(t, c.SaveInterval(&iv))

	got, err := c.GetIntervals(time.Time{}, time.Time{})
	require.NoError(t, err)

	if diff := cmp.Diff([]models.Interval{iv}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteIntervals(t *testing.T) {
	c, _ := newTestClient(t)
	all := seed(t, c)

	n, err := c.DeleteIntervals(base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := c.GetIntervals(time.Time{}, time.Time{})
	require.NoError(t, err)

	if diff := cmp.Diff(all[3:], got); diff != "" {
		t.Fatalf("remaining intervals mismatch (-want +got):\n%s", diff)
	}

	n, err = c.DeleteIntervals(base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	old := openTimeout
	openTimeout = 50 * time.Millisecond

	t.Cleanup(func() {
		openTimeout = old
	})

	c, path := newTestClient(t)

	_, err := NewClient(path)
	require.ErrorIs(t, err, errRunning)

	require.NoError(t, c.Close())

	reopened, err := NewClient(path)
	require.NoError(t, err)
	require.NoError(t, reopened.Close())
}
