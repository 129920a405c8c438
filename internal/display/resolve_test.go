package display

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/teams"
	"github.com/preston-bernstein/magtag-gateway/internal/timeutil"
)

const sharks = 28

// venue is a fixed UTC-8 fixture zone. The configured default venue zone
// observes daylight saving, see TestResolveNextGameInDefaultVenueZone.
var venue = time.FixedZone("PST", -8*60*60)

func mustParse(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, v)
	require.NoError(t, err)
	return parsed
}

func sharksAt(start time.Time, phase games.Phase) *games.Snapshot {
	return &games.Snapshot{
		ID:    2020020123,
		Start: start,
		Home:  teams.Team{ID: 5, Name: "Pittsburgh Penguins"},
		Away:  teams.Team{ID: sharks, Name: "San Jose Sharks"},
		Phase: phase,
	}
}

func TestResolveNextGameScenario(t *testing.T) {
	now := mustParse(t, "2021-03-19T10:00:00Z")
	next := sharksAt(mustParse(t, "2021-03-21T14:00:00-04:00"), games.PhasePreview)

	res, err := Resolve(Input{
		Next:      next,
		TeamID:    sharks,
		TeamLabel: "Sharks",
		Now:       now,
		Location:  venue,
	})
	require.NoError(t, err)

	assert.Equal(t, StateNext, res.State)
	assert.Equal(t, "Next Up", res.Payload.Top)
	assert.Equal(t, "@ Pittsburgh Penguins", res.Payload.Middle)
	assert.Equal(t, "Mar 21 @ 10:00AM", res.Payload.Bottom)
	assert.Equal(t, "2:00AM", res.Payload.CurrentTime)
	assert.Equal(t, int(LongSleep/time.Second), res.Payload.SleepSeconds)
	assert.True(t, next.Start.Equal(res.Payload.EventInstant))
}

func TestResolveNextGameInDefaultVenueZone(t *testing.T) {
	loc := timeutil.LoadLocation(timeutil.DefaultVenueZone)
	require.Equal(t, "America/Los_Angeles", loc.String())

	now := mustParse(t, "2021-03-19T10:00:00Z")
	next := sharksAt(mustParse(t, "2021-03-21T14:00:00-04:00"), games.PhasePreview)

	res, err := Resolve(Input{
		Next:      next,
		TeamID:    sharks,
		TeamLabel: "Sharks",
		Now:       now,
		Location:  loc,
	})
	require.NoError(t, err)

	// Daylight saving began on Mar 14, so both instants are UTC-7.
	assert.Equal(t, "Mar 21 @ 11:00AM", res.Payload.Bottom)
	assert.Equal(t, "3:00AM", res.Payload.CurrentTime)
}

func TestResolveIntermissionScenario(t *testing.T) {
	now := mustParse(t, "2021-03-20T04:30:00Z")
	today := sharksAt(mustParse(t, "2021-03-20T03:00:00Z"), games.PhaseLive)
	today.Clock = &games.PeriodClock{
		Ordinal:      "1st",
		Remaining:    "END",
		Intermission: games.Intermission{Active: true, Remaining: 761 * time.Second},
	}

	res, err := Resolve(Input{Today: today, TeamID: sharks, Now: now, Location: venue})
	require.NoError(t, err)

	assert.Equal(t, StateIntermission, res.State)
	assert.Equal(t, "Live", res.Payload.Top)
	assert.Equal(t, "1st int|12:41", res.Payload.Bottom)
	assert.Equal(t, int(ShortSleep/time.Second), res.Payload.SleepSeconds)
}

func TestResolveBothAbsentReturnsDefault(t *testing.T) {
	now := mustParse(t, "2021-03-19T10:00:00Z")

	res, err := Resolve(Input{TeamID: sharks, TeamLabel: "Sharks", Now: now, Location: venue})
	require.NoError(t, err)

	assert.Equal(t, StateNoGames, res.State)
	assert.Equal(t, Payload{
		Top:          "Sharks Next Up",
		Middle:       "No Games",
		Bottom:       "",
		CurrentTime:  "2:00AM",
		SleepSeconds: 900,
	}, res.Payload)
	assert.False(t, res.Payload.HasEvent())
}

func TestResolveTodayStates(t *testing.T) {
	now := mustParse(t, "2021-03-20T02:00:00Z") // 6:00PM venue time on the 19th
	start := mustParse(t, "2021-03-20T03:00:00Z")

	tests := []struct {
		name   string
		mutate func(g *games.Snapshot)
		state  State
		top    string
		bottom string
		sleep  time.Duration
	}{
		{
			name:   "pregame",
			mutate: func(g *games.Snapshot) { g.Phase = games.PhasePreview; g.PreGame = true },
			state:  StatePregame,
			top:    "Pregame",
			bottom: "Live",
			sleep:  ShortSleep,
		},
		{
			name:   "scheduled later today",
			mutate: func(g *games.Snapshot) { g.Phase = games.PhasePreview },
			state:  StateScheduledToday,
			top:    "Next Up",
			bottom: "Today @ 7:00PM",
			sleep:  40 * time.Minute,
		},
		{
			name: "scheduled today time tbd",
			mutate: func(g *games.Snapshot) {
				g.Phase = games.PhasePreview
				g.TimeTBD = true
			},
			state:  StateScheduledToday,
			top:    "Next Up",
			bottom: "Today",
			sleep:  40 * time.Minute,
		},
		{
			name: "scheduled playoff game",
			mutate: func(g *games.Snapshot) {
				g.Phase = games.PhasePreview
				g.ID = 2020030181
			},
			state:  StateScheduledToday,
			top:    "Round 1 - Game 1",
			bottom: "Today @ 7:00PM",
			sleep:  40 * time.Minute,
		},
		{
			name: "live playing",
			mutate: func(g *games.Snapshot) {
				g.Phase = games.PhaseLive
				g.Clock = &games.PeriodClock{Ordinal: "2nd", Remaining: "14:07"}
			},
			state:  StateLive,
			top:    "Live",
			bottom: "2nd | 14:07",
			sleep:  ShortSleep,
		},
		{
			name: "live with blank clock uses defaults",
			mutate: func(g *games.Snapshot) {
				g.Phase = games.PhaseLive
				g.Clock = &games.PeriodClock{}
			},
			state:  StateLive,
			top:    "Live",
			bottom: "1st | 00:00",
			sleep:  ShortSleep,
		},
		{
			name: "intermission pads minutes",
			mutate: func(g *games.Snapshot) {
				g.Phase = games.PhaseLive
				g.Clock = &games.PeriodClock{
					Ordinal:      "2nd",
					Intermission: games.Intermission{Active: true, Remaining: 526 * time.Second},
				}
			},
			state:  StateIntermission,
			top:    "Live",
			bottom: "2nd int|08:46",
			sleep:  ShortSleep,
		},
		{
			name: "final ignores clock",
			mutate: func(g *games.Snapshot) {
				g.Phase = games.PhaseFinal
				g.Clock = &games.PeriodClock{Ordinal: "OT", Remaining: "Final"}
			},
			state:  StateFinal,
			top:    "Final",
			bottom: "",
			sleep:  LongSleep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := sharksAt(start, games.PhasePreview)
			tt.mutate(today)
			next := sharksAt(start.Add(72*time.Hour), games.PhasePreview)

			res, err := Resolve(Input{Today: today, Next: next, TeamID: sharks, Now: now, Location: venue})
			require.NoError(t, err)

			assert.Equal(t, tt.state, res.State)
			assert.Equal(t, tt.top, res.Payload.Top)
			assert.Equal(t, tt.bottom, res.Payload.Bottom)
			assert.Equal(t, "@ Pittsburgh Penguins", res.Payload.Middle)
			assert.Equal(t, int(tt.sleep/time.Second), res.Payload.SleepSeconds)
			assert.True(t, today.Start.Equal(res.Payload.EventInstant), "today governs over next")
		})
	}
}

func TestResolveFinalNeverShowsClock(t *testing.T) {
	now := mustParse(t, "2021-03-20T07:00:00Z")
	for _, clock := range []*games.PeriodClock{
		nil,
		{Ordinal: "3rd", Remaining: "00:00"},
		{Ordinal: "OT", Intermission: games.Intermission{Active: true, Remaining: time.Minute}},
	} {
		today := sharksAt(mustParse(t, "2021-03-20T03:00:00Z"), games.PhaseFinal)
		today.Clock = clock

		res, err := Resolve(Input{Today: today, TeamID: sharks, Now: now, Location: venue})
		require.NoError(t, err)
		assert.Equal(t, "Final", res.Payload.Top)
		assert.Equal(t, "", res.Payload.Bottom)
	}
}

func TestResolveLiveWithoutClockFails(t *testing.T) {
	now := mustParse(t, "2021-03-20T04:00:00Z")
	today := sharksAt(mustParse(t, "2021-03-20T03:00:00Z"), games.PhaseLive)

	_, err := Resolve(Input{Today: today, TeamID: sharks, Now: now, Location: venue})
	if !errors.Is(err, ErrMissingPeriodClock) {
		t.Fatalf("expected ErrMissingPeriodClock, got %v", err)
	}
}

func TestResolveUnknownPhaseFails(t *testing.T) {
	now := mustParse(t, "2021-03-20T04:00:00Z")
	today := sharksAt(mustParse(t, "2021-03-20T03:00:00Z"), games.Phase(0))

	_, err := Resolve(Input{Today: today, TeamID: sharks, Now: now, Location: venue})
	if !errors.Is(err, games.ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase, got %v", err)
	}
}

func TestResolveTodayOnAnotherVenueDayFallsThroughToNext(t *testing.T) {
	// Yesterday's final is still returned by the upstream "today" query after midnight UTC.
	now := mustParse(t, "2021-03-20T16:00:00Z")
	today := sharksAt(mustParse(t, "2021-03-19T03:00:00Z"), games.PhaseFinal)
	next := sharksAt(mustParse(t, "2021-03-22T03:00:00Z"), games.PhasePreview)
	next.Home, next.Away = next.Away, next.Home

	res, err := Resolve(Input{Today: today, Next: next, TeamID: sharks, Now: now, Location: venue})
	require.NoError(t, err)

	assert.Equal(t, StateNext, res.State)
	assert.Equal(t, "vs Pittsburgh Penguins", res.Payload.Middle)
	assert.Equal(t, "Mar 21 @ 7:00PM", res.Payload.Bottom)
}

func TestResolveSameDayIsJudgedInVenueZone(t *testing.T) {
	// 02:00Z on the 20th is the 19th in the venue; a 03:00Z start is the same venue day.
	now := mustParse(t, "2021-03-20T02:00:00Z")
	today := sharksAt(mustParse(t, "2021-03-20T03:00:00Z"), games.PhasePreview)

	res, err := Resolve(Input{Today: today, TeamID: sharks, Now: now, Location: venue})
	require.NoError(t, err)
	assert.Equal(t, StateScheduledToday, res.State)

	// For a venue east of UTC that start falls on the day after 23:30 local.
	east := time.FixedZone("east", 10*60*60)
	eastNow := mustParse(t, "2021-03-19T13:30:00Z") // 23:30 on the 19th in east
	res, err = Resolve(Input{Today: today, TeamID: sharks, Now: eastNow, Location: east})
	require.NoError(t, err)
	assert.Equal(t, StateNoGames, res.State)
}

func TestOpponentRelationNeverBoth(t *testing.T) {
	now := mustParse(t, "2021-03-19T10:00:00Z")
	next := sharksAt(mustParse(t, "2021-03-21T14:00:00-04:00"), games.PhasePreview)

	away, err := Resolve(Input{Next: next, TeamID: sharks, Now: now, Location: venue})
	require.NoError(t, err)
	home, err := Resolve(Input{Next: next, TeamID: 5, Now: now, Location: venue})
	require.NoError(t, err)

	assert.Equal(t, "@ Pittsburgh Penguins", away.Payload.Middle)
	assert.Equal(t, "vs San Jose Sharks", home.Payload.Middle)
}

func TestResolveUsesCustomPolicy(t *testing.T) {
	now := mustParse(t, "2021-03-19T10:00:00Z")
	next := sharksAt(now.Add(10*time.Minute), games.PhasePreview)
	policy := SleepPolicy{Short: 30 * time.Second, Long: time.Hour, Threshold: 15 * time.Minute}

	res, err := Resolve(Input{Next: next, TeamID: sharks, Now: now, Location: venue, Policy: policy})
	require.NoError(t, err)
	assert.Equal(t, 30, res.Payload.SleepSeconds)
}
