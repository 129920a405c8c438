package server

import (
	"log/slog"

	"github.com/preston-bernstein/magtag-gateway/internal/config"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/fixture"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/statsapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New(cfg.Fixture.TodayFile, cfg.Fixture.NextFile)
	case config.ProviderStatsAPI, "":
		return newStatsAPIClient(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to statsapi", slog.String("provider", cfg.Provider))
		}
		return newStatsAPIClient(cfg)
	}
}

func newStatsAPIClient(cfg config.Config) *statsapi.Client {
	return statsapi.NewClient(statsapi.Config{
		BaseURL: cfg.StatsAPI.BaseURL,
		Timeout: cfg.StatsAPI.Timeout,
	})
}
