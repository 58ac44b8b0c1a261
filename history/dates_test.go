package history

import (
	"testing"
	"time"
)

func TestWeeknights(t *testing.T) {
	dates := Weeknights(2024)

	if len(dates) != 65 {
		t.Fatalf("Incorrect number of weeknights for 2024 - expected:%v, got:%v", 65, len(dates))
	}

	first := time.Date(2024, time.June, 3, 22, 0, 0, 0, eastern)
	if !dates[0].Equal(first) {
		t.Errorf("Incorrect first weeknight\n   expected: %v\n   got:      %v\n", first, dates[0])
	}

	last := time.Date(2024, time.August, 30, 22, 0, 0, 0, eastern)
	if !dates[len(dates)-1].Equal(last) {
		t.Errorf("Incorrect last weeknight\n   expected: %v\n   got:      %v\n", last, dates[len(dates)-1])
	}
}

func TestWeeknightsExcludesWeekends(t *testing.T) {
	for _, year := range []int{2019, 2023, 2024, 2025} {
		for _, date := range Weeknights(year) {
			if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
				t.Errorf("Weeknight %v falls on a %v", date.Format("2006-01-02"), weekday)
			}
		}
	}
}

func TestWeeknightsStayWithinJuneToAugust(t *testing.T) {
	for _, date := range Weeknights(2024) {
		if date.Month() < time.June || date.Month() > time.August {
			t.Errorf("Weeknight %v is outside June 1 - August 30", date.Format("2006-01-02"))
		}

		if date.Month() == time.August && date.Day() > 30 {
			t.Errorf("Weeknight %v is after August 30", date.Format("2006-01-02"))
		}
	}
}

func TestWeeknightsAreAtTenPMEastern(t *testing.T) {
	for _, date := range Weeknights(2024) {
		if date.Hour() != 22 || date.Minute() != 0 || date.Second() != 0 {
			t.Errorf("Weeknight %v is not at 22:00:00", date)
		}

		if zone, offset := date.Zone(); zone != "EDT" || offset != -4*60*60 {
			t.Errorf("Weeknight %v is not in US Eastern daylight time (zone:%v, offset:%v)", date, zone, offset)
		}
	}
}

func TestWeeknightsAreStrictlyIncreasing(t *testing.T) {
	dates := Weeknights(2025)

	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Errorf("Weeknights out of order at %v: %v does not precede %v", i, dates[i-1], dates[i])
		}
	}
}
