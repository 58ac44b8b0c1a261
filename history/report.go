package history

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Snapshot is the grid captured for a single target date.
type Snapshot struct {
	Date time.Time
	Rows [][]string
}

// Snapshots accumulates one snapshot per target date over a run. Dates with
// no retrievable data get an explicit empty entry so that the archive always
// reports on every expected date.
type Snapshots []Snapshot

// Add records the grid for a date. A nil grid is stored as an empty grid.
func (s *Snapshots) Add(date time.Time, rows [][]string) {
	if rows == nil {
		rows = [][]string{}
	}

	*s = append(*s, Snapshot{Date: date, Rows: rows})
}

// Render formats the accumulated snapshots as archive rows: a generated-at
// banner and description, then a dated section per snapshot. Sections are in
// ascending date order regardless of the order the dates were processed in.
func (s Snapshots) Render(generated time.Time) [][]string {
	sorted := make(Snapshots, len(s))
	copy(sorted, s)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := [][]string{
		{fmt.Sprintf("Historical Data Extract - Generated %s", generated.Format("2006-01-02 15:04:05"))},
		{"10pm ET Snapshots - Weeknights (Mon-Fri) June 1 - August 30"},
		{strings.Repeat("=", 50)},
		{""},
	}

	for _, snapshot := range sorted {
		rows = append(rows, []string{fmt.Sprintf("📅 %s at 10:00 PM ET", snapshot.Date.Format("Monday, January 02, 2006"))})
		rows = append(rows, []string{""})

		if len(snapshot.Rows) > 0 {
			rows = append(rows, snapshot.Rows...)
		} else {
			rows = append(rows, []string{"[No data found for this date]"})
		}

		rows = append(rows, []string{""})
		rows = append(rows, []string{strings.Repeat("-", 50)})
		rows = append(rows, []string{""})
	}

	return rows
}
