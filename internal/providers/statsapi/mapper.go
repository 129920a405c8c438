package statsapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/teams"
)

const pregameState = "Pre-Game"

func mapGame(g gameResponse) (*games.Snapshot, error) {
	phase, err := games.ParsePhase(g.Status.AbstractGameState)
	if err != nil {
		return nil, fmt.Errorf("%s: game %d: %w", providerName, g.GamePk, err)
	}

	snap := &games.Snapshot{
		ID:      g.GamePk,
		Start:   g.GameDate.UTC(),
		Home:    mapTeam(g.Teams.Home.Team),
		Away:    mapTeam(g.Teams.Away.Team),
		Phase:   phase,
		PreGame: strings.EqualFold(g.Status.DetailedState, pregameState),
		TimeTBD: g.Status.StartTimeTBD,
	}
	if g.Linescore != nil {
		snap.Clock = mapClock(*g.Linescore)
	}
	return snap, nil
}

func mapTeam(t teamResponse) teams.Team {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		name = teams.Label(t.ID)
	}
	return teams.Team{ID: t.ID, Name: name}
}

func mapClock(ls linescoreResponse) *games.PeriodClock {
	remaining := ls.IntermissionInfo.IntermissionTimeRemaining
	if remaining < 0 {
		remaining = 0
	}
	return &games.PeriodClock{
		Ordinal:   strings.TrimSpace(ls.CurrentPeriodOrdinal),
		Remaining: strings.TrimSpace(ls.CurrentPeriodTimeRemaining),
		Intermission: games.Intermission{
			Active:    ls.IntermissionInfo.InIntermission,
			Remaining: time.Duration(remaining) * time.Second,
		},
	}
}

// firstGame maps the first game of the first listed date, or nil when the
// schedule is empty.
func firstGame(s *scheduleResponse) (*games.Snapshot, error) {
	if s == nil || s.TotalItems == 0 {
		return nil, nil
	}
	for _, d := range s.Dates {
		if len(d.Games) > 0 {
			return mapGame(d.Games[0])
		}
	}
	return nil, nil
}
