package providers

import (
	"context"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/events"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
)

// ScheduleProvider fetches a team's schedule snapshots from the primary upstream.
// A nil snapshot with a nil error means the query matched no games.
type ScheduleProvider interface {
	// FetchToday returns the team's game for the upstream's current schedule day.
	FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error)
	// FetchNext returns the team's next scheduled game.
	FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error)
}

// EventSource provides a secondary list of dated events, sorted by start.
type EventSource interface {
	Name() string
	// Label is the top line shown when this source governs the display.
	Label() string
	FetchEvents(ctx context.Context) ([]events.Event, error)
}
