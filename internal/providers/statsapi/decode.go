package statsapi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
)

// DecodeToday parses a /schedule?expand=schedule.linescore document.
// It returns nil when the team has no game on the listed day.
func DecodeToday(r io.Reader) (*games.Snapshot, error) {
	var payload scheduleResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode schedule: %w", providerName, err)
	}
	return firstGame(&payload)
}

// DecodeNext parses a /teams/{id}?expand=team.schedule.next document.
// It returns nil when no next game is listed.
func DecodeNext(r io.Reader) (*games.Snapshot, error) {
	var payload nextResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode team schedule: %w", providerName, err)
	}
	if len(payload.Teams) == 0 {
		return nil, nil
	}
	return firstGame(payload.Teams[0].NextGameSchedule)
}
