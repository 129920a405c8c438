package display

import (
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/gameid"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/timeutil"
)

const (
	defaultOrdinal   = "1st"
	defaultRemaining = "00:00"
)

// ErrMissingPeriodClock is returned when a live game arrives without its period clock.
var ErrMissingPeriodClock = errors.New("live game missing period clock")

// State names the branch that produced a payload.
type State string

const (
	StateNoGames        State = "no_games"
	StatePregame        State = "pregame"
	StateScheduledToday State = "scheduled_today"
	StateIntermission   State = "intermission"
	StateLive           State = "live"
	StateFinal          State = "final"
	StateNext           State = "next"
	StateEvent          State = "event"
)

// Input is everything a resolution needs. Today and Next are nil when the
// corresponding query returned nothing or could not be fetched.
type Input struct {
	Today     *games.Snapshot
	Next      *games.Snapshot
	TeamID    int
	TeamLabel string
	Now       time.Time
	Location  *time.Location
	// Policy defaults to DefaultSleepPolicy when zero.
	Policy SleepPolicy
}

// Result is a resolved payload and the state that produced it.
type Result struct {
	Payload Payload
	State   State
}

// Resolve decides what the display shows for a team.
//
// Today's game governs when it starts on the current venue-local day; otherwise
// the next scheduled game does; otherwise the default "No Games" payload.
func Resolve(in Input) (Result, error) {
	loc := in.location()
	clock := timeutil.FormatClock(in.Now, loc)

	if in.Today != nil && timeutil.SameLocalDay(in.Today.Start, in.Now, loc) {
		return resolveToday(*in.Today, in, clock)
	}
	if in.Next != nil {
		return Result{Payload: upcoming(*in.Next, in, clock), State: StateNext}, nil
	}
	return Result{Payload: Default(in.TeamLabel, clock), State: StateNoGames}, nil
}

func resolveToday(g games.Snapshot, in Input, clock string) (Result, error) {
	policy := in.policy()
	p := Payload{
		Middle:       g.Opponent(in.TeamID),
		CurrentTime:  clock,
		EventInstant: g.Start,
	}

	switch g.Phase {
	case games.PhasePreview:
		if g.PreGame {
			p.Top = Pregame
			p.Bottom = Live
			p.SleepSeconds = seconds(policy.Short)
			return Result{Payload: p, State: StatePregame}, nil
		}
		return Result{Payload: upcoming(g, in, clock), State: StateScheduledToday}, nil
	case games.PhaseLive:
		if g.Clock == nil {
			return Result{}, fmt.Errorf("%w: game %d", ErrMissingPeriodClock, g.ID)
		}
		p.Top = Live
		p.Bottom = liveClock(*g.Clock)
		p.SleepSeconds = seconds(policy.Short)
		if g.Clock.Intermission.Active {
			return Result{Payload: p, State: StateIntermission}, nil
		}
		return Result{Payload: p, State: StateLive}, nil
	case games.PhaseFinal:
		p.Top = Final
		p.Bottom = ""
		p.SleepSeconds = seconds(policy.Long)
		return Result{Payload: p, State: StateFinal}, nil
	default:
		return Result{}, fmt.Errorf("%w: %s", games.ErrUnknownPhase, g.Phase)
	}
}

// upcoming renders a game that has not started yet.
func upcoming(g games.Snapshot, in Input, clock string) Payload {
	loc := in.location()
	return Payload{
		Top:          UpcomingLabel(g.ID),
		Middle:       g.Opponent(in.TeamID),
		Bottom:       timeutil.FormatRelative(g.Start, in.Now, loc, g.TimeTBD),
		CurrentTime:  clock,
		SleepSeconds: in.policy().Seconds(g.Start.Sub(in.Now)),
		EventInstant: g.Start,
	}
}

// UpcomingLabel is "Next Up", or the series label for playoff games.
func UpcomingLabel(gameID int64) string {
	if p, ok := gameid.Decode(gameID).Playoff(); ok {
		return p.Label()
	}
	return NextUp
}

func liveClock(c games.PeriodClock) string {
	ordinal := c.Ordinal
	if ordinal == "" {
		ordinal = defaultOrdinal
	}
	if c.Intermission.Active {
		return ordinal + " int|" + timeutil.FormatCountdown(c.Intermission.Remaining)
	}
	remaining := c.Remaining
	if remaining == "" {
		remaining = defaultRemaining
	}
	return ordinal + " | " + remaining
}

func (in Input) location() *time.Location {
	if in.Location == nil {
		return time.UTC
	}
	return in.Location
}

func (in Input) policy() SleepPolicy {
	if in.Policy == (SleepPolicy{}) {
		return DefaultSleepPolicy()
	}
	return in.Policy
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
