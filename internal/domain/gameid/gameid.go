// Package gameid decodes upstream game identifiers.
//
// Identifiers are ten digits: SSSSTTNNNN, where SSSS is the season start year,
// TT the game type and NNNN the game number. Playoff game numbers are 0RMG:
// round, matchup and game within the series.
package gameid

import "fmt"

const (
	typePreseason = 1
	typeRegular   = 2
	typePlayoff   = 3
)

// Phase is one of Preseason, Regular or Playoff.
type Phase interface {
	isPhase()
}

// Preseason is an exhibition game.
type Preseason struct {
	Number int
}

// Regular is a regular-season game. Unrecognized game types also decode as Regular.
type Regular struct {
	Number int
}

// Playoff identifies a game within a playoff series.
type Playoff struct {
	Round   int
	Matchup int
	Game    int
}

func (Preseason) isPhase() {}
func (Regular) isPhase()   {}
func (Playoff) isPhase()   {}

// ID is a decoded game identifier.
type ID struct {
	Season int
	Phase  Phase
}

// Decode splits id into season and phase. It never fails.
func Decode(id int64) ID {
	season := int(id / 1_000_000)
	rest := id % 1_000_000
	if rest < 0 {
		rest = -rest
	}
	code := int(rest / 10_000)
	low := int(rest % 10_000)

	var phase Phase
	switch code {
	case typePreseason:
		phase = Preseason{Number: low}
	case typePlayoff:
		phase = Playoff{
			Round:   (low / 100) % 10,
			Matchup: (low / 10) % 10,
			Game:    low % 10,
		}
	default:
		phase = Regular{Number: low}
	}
	return ID{Season: season, Phase: phase}
}

// Playoff returns the playoff detail when the id is a playoff game.
func (id ID) Playoff() (Playoff, bool) {
	p, ok := id.Phase.(Playoff)
	return p, ok
}

// RoundLabel is the short display name of a playoff round.
func RoundLabel(round int) string {
	switch round {
	case 1:
		return "Round 1"
	case 2:
		return "Round 2"
	case 3:
		return "Conf Final"
	case 4:
		return "Cup Final"
	default:
		return fmt.Sprintf("Round %d", round)
	}
}

// Label renders a playoff game as "Round 1 - Game 3".
func (p Playoff) Label() string {
	return fmt.Sprintf("%s - Game %d", RoundLabel(p.Round), p.Game)
}
