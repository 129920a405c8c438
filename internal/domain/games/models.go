package games

import (
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/teams"
)

// ErrUnknownPhase is returned when an upstream game state does not map to a Phase.
var ErrUnknownPhase = errors.New("unknown game phase")

// Phase is the coarse lifecycle state of a game.
type Phase int

const (
	PhasePreview Phase = iota + 1
	PhaseLive
	PhaseFinal
)

// ParsePhase maps an upstream abstract game state onto a Phase.
func ParsePhase(raw string) (Phase, error) {
	switch raw {
	case "Preview":
		return PhasePreview, nil
	case "Live":
		return PhaseLive, nil
	case "Final":
		return PhaseFinal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, raw)
	}
}

func (p Phase) String() string {
	switch p {
	case PhasePreview:
		return "Preview"
	case PhaseLive:
		return "Live"
	case PhaseFinal:
		return "Final"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Intermission describes a break between periods.
type Intermission struct {
	Active    bool
	Remaining time.Duration
}

// PeriodClock carries the in-game clock for live games.
type PeriodClock struct {
	Ordinal      string
	Remaining    string
	Intermission Intermission
}

// Snapshot is a point-in-time view of a single game.
type Snapshot struct {
	ID      int64
	Start   time.Time
	Home    teams.Team
	Away    teams.Team
	Phase   Phase
	PreGame bool
	TimeTBD bool
	Clock   *PeriodClock
}

// IsHome reports whether teamID is the home side.
func (s Snapshot) IsHome(teamID int) bool {
	return s.Home.ID == teamID
}

// Opponent renders the opponent relation from teamID's point of view:
// "vs Away" when teamID is home, "@ Home" otherwise.
func (s Snapshot) Opponent(teamID int) string {
	if s.IsHome(teamID) {
		return "vs " + s.Away.Name
	}
	return "@ " + s.Home.Name
}
