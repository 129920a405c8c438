package server

import (
	"log/slog"

	"github.com/preston-bernstein/magtag-gateway/internal/config"
	"github.com/preston-bernstein/magtag-gateway/internal/metrics"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/events"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/scraped"
)

// providerFactory assembles the primary provider and secondary sources with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.ScheduleProvider) providers.ScheduleProvider {
	return providers.NewInstrumentedProvider(base, normalizeProviderName(cfg.Provider, base), f.logger, f.metrics)
}

// sources returns the configured secondary event sources in priority order.
func (f providerFactory) sources(cfg config.Config) []providers.EventSource {
	var out []providers.EventSource
	if cfg.Events.File != "" {
		out = append(out, providers.NewInstrumentedSource(
			events.New(cfg.Events.File, cfg.Events.Label), f.logger, f.metrics))
	}
	if cfg.Secondary.URL != "" {
		out = append(out, providers.NewInstrumentedSource(scraped.New(scraped.Config{
			URL:     cfg.Secondary.URL,
			Label:   cfg.Secondary.Label,
			Timeout: cfg.Secondary.Timeout,
		}), f.logger, f.metrics))
	}
	return out
}
