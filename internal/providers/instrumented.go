package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/events"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/logging"
	"github.com/preston-bernstein/magtag-gateway/internal/metrics"
)

// instrumentedProvider records attempts, latency and rate limits for each upstream call.
type instrumentedProvider struct {
	inner   ScheduleProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps a ScheduleProvider with metrics and logging.
func NewInstrumentedProvider(inner ScheduleProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScheduleProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	snap, err := p.inner.FetchToday(ctx, teamID)
	p.observe(ctx, "today", teamID, start, err)
	return snap, err
}

func (p *instrumentedProvider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	snap, err := p.inner.FetchNext(ctx, teamID)
	p.observe(ctx, "next", teamID, start, err)
	return snap, err
}

func (p *instrumentedProvider) observe(ctx context.Context, query string, teamID int, start time.Time, err error) {
	elapsed := p.now().Sub(start)
	record(ctx, p.logger, p.metrics, p.name, elapsed, err,
		slog.String(logging.FieldQuery, query),
		slog.Int(logging.FieldTeam, teamID),
	)
}

// instrumentedSource records attempts and latency for a secondary event source.
type instrumentedSource struct {
	inner   EventSource
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedSource wraps an EventSource with metrics and logging.
func NewInstrumentedSource(inner EventSource, logger *slog.Logger, recorder *metrics.Recorder) EventSource {
	return &instrumentedSource{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (s *instrumentedSource) Name() string {
	if s.inner == nil {
		return "source"
	}
	return s.inner.Name()
}

func (s *instrumentedSource) Label() string {
	if s.inner == nil {
		return ""
	}
	return s.inner.Label()
}

func (s *instrumentedSource) FetchEvents(ctx context.Context) ([]events.Event, error) {
	if s.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := s.now()
	list, err := s.inner.FetchEvents(ctx)
	record(ctx, s.logger, s.metrics, s.Name(), s.now().Sub(start), err,
		slog.Int(logging.FieldCount, len(list)),
	)
	return list, err
}

func record(ctx context.Context, logger *slog.Logger, recorder *metrics.Recorder, name string, elapsed time.Duration, err error, attrs ...any) {
	recorder.RecordProviderAttempt(name, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		recorder.RecordRateLimit(name, rl.RetryAfter)
	}

	attrs = append(attrs, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
		logWithProvider(ctx, logger, slog.LevelWarn, name, "provider fetch failed", attrs...)
		return
	}
	logWithProvider(ctx, logger, slog.LevelDebug, name, "provider fetch complete", attrs...)
}
