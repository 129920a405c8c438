package display

import (
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/events"
	"github.com/preston-bernstein/magtag-gateway/internal/timeutil"
)

// EventInput describes a secondary source's events reduced under a fixed label.
type EventInput struct {
	Events   []events.Event
	Label    string
	Now      time.Time
	Location *time.Location
	Policy   SleepPolicy
}

// ResolveEvents reduces a sorted event list to a payload for the first event
// strictly after Now. ok is false when nothing is upcoming.
func ResolveEvents(in EventInput) (Payload, bool) {
	next, ok := events.FirstAfter(in.Events, in.Now)
	if !ok {
		return Payload{}, false
	}
	gameIn := Input{Now: in.Now, Location: in.Location, Policy: in.Policy}
	loc := gameIn.location()
	return Payload{
		Top:          in.Label,
		Middle:       next.Title,
		Bottom:       timeutil.FormatRelative(next.Start, in.Now, loc, false),
		CurrentTime:  timeutil.FormatClock(in.Now, loc),
		SleepSeconds: gameIn.policy().Seconds(next.Start.Sub(in.Now)),
		EventInstant: next.Start,
	}, true
}

// Select returns the candidate whose event is soonest. Candidates without an
// event are skipped, ties keep the earlier argument, and fallback is returned
// when no candidate has an event.
func Select(fallback Payload, candidates ...Payload) Payload {
	i, ok := Pick(candidates...)
	if !ok {
		return fallback
	}
	return candidates[i]
}

// Pick reports the index Select would choose.
func Pick(candidates ...Payload) (int, bool) {
	best := -1
	for i, c := range candidates {
		if !c.HasEvent() {
			continue
		}
		if best < 0 || c.EventInstant.Before(candidates[best].EventInstant) {
			best = i
		}
	}
	return best, best >= 0
}
