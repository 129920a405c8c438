package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout renders wall-clock times like "7:05PM".
	ClockLayout = "3:04PM"
	// MonthDayLayout renders calendar days like "Mar 21".
	MonthDayLayout = "Jan 2"

	// DefaultVenueZone is used when no venue timezone is configured or it fails to load.
	DefaultVenueZone = "America/Los_Angeles"
)

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LoadLocation resolves a venue timezone, falling back to DefaultVenueZone and then UTC.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultVenueZone); err == nil {
		return loc
	}
	return time.UTC
}

// SameLocalDay reports whether a and b fall on the same calendar day in loc.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	loc = orUTC(loc)
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FormatClock renders t as venue wall-clock time, e.g. "7:05PM".
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(orUTC(loc)).Format(ClockLayout)
}

// FormatRelative renders "Today @ 7:05PM" for events later today and
// "Mar 21 @ 7:05PM" otherwise. tbd drops the clock portion.
func FormatRelative(t, now time.Time, loc *time.Location, tbd bool) string {
	loc = orUTC(loc)
	day := "Today"
	if !SameLocalDay(t, now, loc) {
		day = t.In(loc).Format(MonthDayLayout)
	}
	if tbd {
		return day
	}
	return day + " @ " + FormatClock(t, loc)
}

// FormatCountdown renders a duration as zero-padded minutes and seconds ("08:46").
// Negative durations render as "00:00".
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
