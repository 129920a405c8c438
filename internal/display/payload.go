package display

import (
	"encoding/json"
	"time"
)

const (
	// NoGames is the middle line shown when nothing is scheduled.
	NoGames = "No Games"
	// NextUp labels an upcoming game.
	NextUp = "Next Up"
	// Pregame labels a game in warmups.
	Pregame = "Pregame"
	// Live labels an in-progress game, and doubles as the pregame hint line.
	Live = "Live"
	// Final labels a finished game.
	Final = "Final"
)

// Payload is what the display renders: three lines, the venue clock and how long to sleep.
type Payload struct {
	Top          string    `json:"top"`
	Middle       string    `json:"middle"`
	Bottom       string    `json:"bottom"`
	CurrentTime  string    `json:"time"`
	SleepSeconds int       `json:"sleep"`
	EventInstant time.Time `json:"-"`
}

// HasEvent reports whether the payload is governed by a dated event.
func (p Payload) HasEvent() bool {
	return !p.EventInstant.IsZero()
}

// Default is the payload shown when no source has anything scheduled.
func Default(teamLabel, currentTime string) Payload {
	top := NextUp
	if teamLabel != "" {
		top = teamLabel + " " + NextUp
	}
	return Payload{
		Top:          top,
		Middle:       NoGames,
		CurrentTime:  currentTime,
		SleepSeconds: int(IdleSleep / time.Second),
	}
}

// MarshalJSON emits the event instant as RFC3339 and omits it when unset.
func (p Payload) MarshalJSON() ([]byte, error) {
	type wire Payload
	out := struct {
		wire
		Event *time.Time `json:"event,omitempty"`
	}{wire: wire(p)}
	if p.HasEvent() {
		at := p.EventInstant
		out.Event = &at
	}
	return json.Marshal(out)
}
