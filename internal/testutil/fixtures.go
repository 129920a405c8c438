package testutil

import (
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/teams"
)

// SampleGame returns a snapshot of a Sharks road game at start in the given phase.
func SampleGame(start time.Time, phase games.Phase) *games.Snapshot {
	return &games.Snapshot{
		ID:    2020020530,
		Start: start,
		Home:  teams.Team{ID: 5, Name: "Pittsburgh Penguins"},
		Away:  teams.Team{ID: teams.DefaultID, Name: "San Jose Sharks"},
		Phase: phase,
	}
}

// SampleLiveGame returns a live snapshot with the given period clock.
func SampleLiveGame(start time.Time, clock games.PeriodClock) *games.Snapshot {
	g := SampleGame(start, games.PhaseLive)
	g.Clock = &clock
	return g
}
