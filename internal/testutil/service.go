package testutil

import (
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/app/nextup"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
)

// NewService builds a nextup service for the default team in UTC with a fixed clock.
func NewService(provider providers.ScheduleProvider, now time.Time, sources ...providers.EventSource) *nextup.Service {
	return nextup.NewService(nextup.Options{
		Provider: provider,
		Sources:  sources,
		Location: time.UTC,
		Now:      NowAt(now),
	})
}
