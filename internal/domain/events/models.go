package events

import (
	"sort"
	"time"
)

// Event is a single dated entry from a secondary source.
// Title is rendered as-is on the display's middle line.
type Event struct {
	Start time.Time `json:"start" yaml:"start"`
	Title string    `json:"title" yaml:"title"`
}

// SortByStart orders events by start instant, keeping input order for ties.
func SortByStart(list []Event) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Before(list[j].Start)
	})
}

// FirstAfter returns the first event starting strictly after now.
// list must be sorted by start.
func FirstAfter(list []Event, now time.Time) (Event, bool) {
	for _, e := range list {
		if e.Start.After(now) {
			return e, true
		}
	}
	return Event{}, false
}
