package history

import (
	"time"
	_ "time/tzdata"
)

// eastern is DST-aware US Eastern time. The tz database is embedded so the
// load cannot fail on hosts without a system zoneinfo.
var eastern = func() *time.Location {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}

	return location
}()

// Weeknights returns the target instants for a year's extraction run: every
// Monday to Friday between June 1 and August 30 (inclusive), at 22:00:00 US
// Eastern. The list is chronological with no duplicates.
func Weeknights(year int) []time.Time {
	dates := []time.Time{}

	date := time.Date(year, time.June, 1, 22, 0, 0, 0, eastern)
	end := time.Date(year, time.August, 30, 22, 0, 0, 0, eastern)

	for !date.After(end) {
		if weekday := date.Weekday(); weekday >= time.Monday && weekday <= time.Friday {
			dates = append(dates, date)
		}

		date = date.AddDate(0, 0, 1)
	}

	return dates
}
