package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/store"
)

const (
	noIntervalsMsg = "No sessions or breaks found for the specified time range"

	defaultHistoryDays = 7

	dateFormat = "Jan 02, 2006 03:04 PM"
)

// historyRange resolves --since and --until. A zero until means no upper
// bound.
func historyRange(ctx *cli.Context, now time.Time) (since, until time.Time, err error) {
	since = timeutil.RoundToStart(now).AddDate(0, 0, -(defaultHistoryDays - 1))

	if s := ctx.String("since"); s != "" {
		since, err = timeutil.FromStr(s)
		if err != nil {
			return since, until, errInvalidDate.Fmt("since").Wrap(err)
		}
	}

	if s := ctx.String("until"); s != "" {
		until, err = timeutil.FromStr(s)
		if err != nil {
			return since, until, errInvalidDate.Fmt("until").Wrap(err)
		}

		if until.Before(since) {
			return since, until, errInvalidRange
		}
	}

	return since, until, nil
}

// historyHelper opens the store and retrieves the intervals in the range.
func historyHelper(since, until time.Time) ([]models.Interval, store.DB, error) {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	intervals, err := db.GetIntervals(since, until)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return intervals, db, nil
}

// printIntervalsTable prints an interval table to w.
func printIntervalsTable(w io.Writer, intervals []models.Interval) error {
	tableBody := make([][]string, 0, len(intervals)+1)

	tableBody = append(tableBody, []string{
		"#", "INTERVAL", "START DATE", "END DATE", "LENGTH", "PAUSED", "STATUS",
	})

	for i := range intervals {
		iv := &intervals[i]

		statusText := ui.Green("completed")
		if !iv.Completed {
			statusText = ui.Red("stopped")
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			iv.Label(),
			iv.StartTime.Local().Format(dateFormat),
			iv.EndTime.Local().Format(dateFormat),
			iv.Active.Round(time.Second).String(),
			iv.Paused().Round(time.Second).String(),
			statusText,
		})
	}

	return ui.PrintTable(tableBody, w)
}

// historyAction handles the history command and prints a table of all the
// intervals started within a time period.
func historyAction(ctx *cli.Context) error {
	since, until, err := historyRange(ctx, time.Now())
	if err != nil {
		return err
	}

	intervals, db, err := historyHelper(since, until)
	if err != nil {
		return err
	}

	defer db.Close()

	w := ctx.App.Writer

	if ctx.Bool("json") {
		if intervals == nil {
			intervals = []models.Interval{}
		}

		b, err := json.Marshal(intervals)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	}

	if len(intervals) == 0 {
		pterm.Info.Println(noIntervalsMsg)
		return nil
	}

	if err := printIntervalsTable(w, intervals); err != nil {
		return err
	}

	return printSummary(w, intervals)
}

// deleteHistoryAction deletes the intervals in the given range. It asks for
// confirmation before proceeding unless --yes is set.
func deleteHistoryAction(ctx *cli.Context) error {
	since, until, err := historyRange(ctx, time.Now())
	if err != nil {
		return err
	}

	intervals, db, err := historyHelper(since, until)
	if err != nil {
		return err
	}

	defer db.Close()

	if len(intervals) == 0 {
		pterm.Info.Println(noIntervalsMsg)
		return nil
	}

	if !ctx.Bool("yes") {
		if err := printIntervalsTable(ctx.App.Writer, intervals); err != nil {
			return err
		}

		warning := pterm.Warning.Sprint(
			"The above intervals will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(ctx.App.Writer, warning)

		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}

	n, err := db.DeleteIntervals(since, until)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("%d intervals deleted", n)

	return nil
}
