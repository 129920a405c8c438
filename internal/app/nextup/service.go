package nextup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/magtag-gateway/internal/display"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/events"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/teams"
	"github.com/preston-bernstein/magtag-gateway/internal/logging"
	"github.com/preston-bernstein/magtag-gateway/internal/metrics"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
	"github.com/preston-bernstein/magtag-gateway/internal/timeutil"
)

// SourcePrimary names the team schedule in responses and metrics.
const SourcePrimary = "primary"

// readyFailureLimit is how many consecutive primary failures flip readiness.
const readyFailureLimit = 3

// Options wires a Service. Provider is required; everything else has a default.
type Options struct {
	Provider    providers.ScheduleProvider
	Sources     []providers.EventSource
	DefaultTeam int
	Location    *time.Location
	Policy      display.SleepPolicy
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Now         func() time.Time
}

// Request selects the team to resolve. Zero means the configured team.
type Request struct {
	TeamID int
}

// Response is the payload served to the display and where it came from.
type Response struct {
	Payload display.Payload
	State   display.State
	Source  string
	TeamID  int
}

// Status describes the recent health of primary upstream fetches.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the primary upstream is not failing repeatedly.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < readyFailureLimit
}

// Service fetches a team's schedule and any secondary sources, then resolves
// the single payload the display should show.
type Service struct {
	provider    providers.ScheduleProvider
	sources     []providers.EventSource
	defaultTeam int
	loc         *time.Location
	policy      display.SleepPolicy
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// NewService constructs a Service with sane defaults.
func NewService(opts Options) *Service {
	s := &Service{
		provider:    opts.Provider,
		sources:     opts.Sources,
		defaultTeam: opts.DefaultTeam,
		loc:         opts.Location,
		policy:      opts.Policy,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		now:         opts.Now,
	}
	if s.defaultTeam <= 0 {
		s.defaultTeam = teams.DefaultID
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.policy == (display.SleepPolicy{}) {
		s.policy = display.DefaultSleepPolicy()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// DefaultTeam returns the team resolved when a request names none.
func (s *Service) DefaultTeam() int {
	return s.defaultTeam
}

// Location returns the venue time zone.
func (s *Service) Location() *time.Location {
	return s.loc
}

// NextUp resolves the display payload for req. It always yields a payload:
// fetch failures count as absent data and a resolution error falls back to
// the default payload.
func (s *Service) NextUp(ctx context.Context, req Request) Response {
	teamID := req.TeamID
	if teamID <= 0 {
		teamID = s.defaultTeam
	}
	logger := logging.FromContext(ctx, s.logger)

	today, next, lists := s.fetch(ctx, logger, teamID)
	now := s.now()
	label := teams.Label(teamID)

	result, err := display.Resolve(display.Input{
		Today:     today,
		Next:      next,
		TeamID:    teamID,
		TeamLabel: label,
		Now:       now,
		Location:  s.loc,
		Policy:    s.policy,
	})
	if err != nil {
		logging.Warn(logger, "resolution failed, serving default",
			slog.Int(logging.FieldTeam, teamID),
			slog.Any("error", err),
		)
		s.metrics.RecordFallback("resolve_error")
		result = display.Result{
			Payload: display.Default(label, timeutil.FormatClock(now, s.loc)),
			State:   display.StateNoGames,
		}
	}

	candidates := []display.Payload{result.Payload}
	names := []string{SourcePrimary}
	for i, src := range s.sources {
		p, ok := display.ResolveEvents(display.EventInput{
			Events:   lists[i],
			Label:    src.Label(),
			Now:      now,
			Location: s.loc,
			Policy:   s.policy,
		})
		if ok {
			candidates = append(candidates, p)
			names = append(names, src.Name())
		}
	}

	resp := Response{Payload: result.Payload, State: result.State, Source: SourcePrimary, TeamID: teamID}
	if i, ok := display.Pick(candidates...); ok && i > 0 {
		resp.Payload = candidates[i]
		resp.State = display.StateEvent
		resp.Source = names[i]
	}

	s.metrics.RecordResolution(string(resp.State), resp.Source)
	logging.Debug(logger, "resolved display payload",
		slog.Int(logging.FieldTeam, teamID),
		slog.String(logging.FieldState, string(resp.State)),
		slog.String(logging.FieldSource, resp.Source),
		slog.String(logging.FieldDate, timeutil.FormatDate(now.In(s.loc))),
	)
	return resp
}

// fetch queries today, next and every secondary source concurrently.
// A failed query is logged and reported as absent.
func (s *Service) fetch(ctx context.Context, logger *slog.Logger, teamID int) (*games.Snapshot, *games.Snapshot, [][]events.Event) {
	var (
		today, next *games.Snapshot
		todayErr    error
		nextErr     error
		lists       = make([][]events.Event, len(s.sources))
	)

	g, gctx := errgroup.WithContext(ctx)
	if s.provider != nil {
		g.Go(func() error {
			today, todayErr = s.provider.FetchToday(gctx, teamID)
			return nil
		})
		g.Go(func() error {
			next, nextErr = s.provider.FetchNext(gctx, teamID)
			return nil
		})
	} else {
		todayErr = providers.ErrProviderUnavailable
		nextErr = providers.ErrProviderUnavailable
	}
	for i, src := range s.sources {
		i, src := i, src
		g.Go(func() error {
			list, err := src.FetchEvents(gctx)
			if err != nil {
				logging.Warn(logger, "secondary source unavailable",
					slog.String(logging.FieldSource, src.Name()),
					slog.Any("error", err),
				)
				return nil
			}
			lists[i] = list
			return nil
		})
	}
	_ = g.Wait()

	if todayErr != nil {
		logging.Warn(logger, "today schedule unavailable", slog.Int(logging.FieldTeam, teamID), slog.Any("error", todayErr))
		today = nil
	}
	if nextErr != nil {
		logging.Warn(logger, "next schedule unavailable", slog.Int(logging.FieldTeam, teamID), slog.Any("error", nextErr))
		next = nil
	}
	s.recordPrimary(firstErr(todayErr, nextErr))
	return today, next, lists
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) recordPrimary(err error) {
	at := s.now()
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
	if err != nil {
		s.status.ConsecutiveFailures++
		s.status.LastError = err.Error()
		return
	}
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

// Status returns a snapshot of recent primary upstream health.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
