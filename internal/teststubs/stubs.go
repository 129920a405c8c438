package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/events"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Today      *games.Snapshot
	Next       *games.Snapshot
	TodayErr   error
	NextErr    error
	TodayCalls atomic.Int32
	NextCalls  atomic.Int32
	// LastTeam records the team id of the most recent call.
	LastTeam atomic.Int32
}

// FetchToday returns the configured today snapshot and error while tracking calls.
func (s *StubProvider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	s.TodayCalls.Add(1)
	s.LastTeam.Store(int32(teamID))
	return s.Today, s.TodayErr
}

// FetchNext returns the configured next snapshot and error while tracking calls.
func (s *StubProvider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	s.NextCalls.Add(1)
	s.LastTeam.Store(int32(teamID))
	return s.Next, s.NextErr
}

// StubSource is a test double for providers.EventSource.
type StubSource struct {
	SourceName  string
	SourceLabel string
	Events      []events.Event
	Err         error
	Calls       atomic.Int32
}

func (s *StubSource) Name() string {
	if s.SourceName == "" {
		return "stub"
	}
	return s.SourceName
}

func (s *StubSource) Label() string { return s.SourceLabel }

// FetchEvents returns the configured events and error while tracking calls.
func (s *StubSource) FetchEvents(ctx context.Context) ([]events.Event, error) {
	s.Calls.Add(1)
	return s.Events, s.Err
}
