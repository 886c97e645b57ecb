package app

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/timer"
)

const barChartChar = "▇"

type summary struct {
	daily      map[time.Time]time.Duration
	focusTime  time.Duration
	breakTime  time.Duration
	completed  int
	stopped    int
	longBreaks int
}

// computeTotals adds up the active time spent in each mode. Pauses are not
// counted. Daily totals only count work sessions and are keyed by the local
// start of day.
func computeTotals(intervals []models.Interval) summary {
	totals := summary{
		daily: make(map[time.Time]time.Duration),
	}

	for i := range intervals {
		iv := &intervals[i]

		d := iv.Active
		if d <= 0 {
			continue
		}

		if iv.Mode == timer.Break {
			totals.breakTime += d

			if iv.Long {
				totals.longBreaks++
			}

			continue
		}

		totals.focusTime += d
		totals.daily[timeutil.RoundToStart(iv.StartTime.Local())] += d

		if iv.Completed {
			totals.completed++
		} else {
			totals.stopped++
		}
	}

	return totals
}

func formatTotal(d time.Duration) string {
	return d.Round(time.Minute).String()
}

// getSummary renders the totals for the reporting period.
func getSummary(totals summary) string {
	header := fmt.Sprintf("\n%s\n", ui.Cyan("Summary"))

	return header +
		fmt.Sprintf("Focus time: %s\n", ui.Green(formatTotal(totals.focusTime))) +
		fmt.Sprintf("Break time: %s\n", ui.Green(formatTotal(totals.breakTime))) +
		fmt.Sprintln("Sessions completed:", ui.Green(totals.completed)) +
		fmt.Sprintln("Sessions stopped:", ui.Green(totals.stopped)) +
		fmt.Sprintln("Long breaks:", ui.Green(totals.longBreaks))
}

// getBarChart renders the focus time of each day in minutes.
func getBarChart(daily map[time.Time]time.Duration) (string, error) {
	if len(daily) == 0 {
		return "", nil
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	bars := make(pterm.Bars, 0, len(days))

	for _, day := range days {
		bars = append(bars, pterm.Bar{
			Label: day.Format("Jan 02, 2006"),
			Value: timeutil.Round(daily[day].Minutes()),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return "", err
	}

	return ui.Cyan("\nDaily focus (minutes)") + "\n" + chart, nil
}

// printSummary prints the totals and the daily breakdown of intervals.
func printSummary(w io.Writer, intervals []models.Interval) error {
	totals := computeTotals(intervals)

	chart, err := getBarChart(totals.daily)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, getSummary(totals)+chart)

	return err
}
