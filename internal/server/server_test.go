package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/config"
	"github.com/preston-bernstein/magtag-gateway/internal/display"
	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/fixture"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/statsapi"
	"github.com/preston-bernstein/magtag-gateway/internal/testutil"
)

func TestServerServesHealthAndNextUp(t *testing.T) {
	provider := testutil.GoodProvider{
		Next: testutil.SampleGame(time.Now().Add(72*time.Hour), games.PhasePreview),
	}

	srv := newServerWithProvider(config.Config{TeamID: 28}, nil, provider)
	router := srv.Handler()

	testutil.AssertStatus(t, testutil.Get(router, "/health"), http.StatusOK)

	payload := testutil.DecodePayload(t, testutil.Get(router, "/next"))
	if payload.Top != display.NextUp {
		t.Fatalf("expected %q top line, got %q", display.NextUp, payload.Top)
	}
	if !strings.Contains(payload.Middle, "Penguins") {
		t.Fatalf("expected opponent on middle line, got %q", payload.Middle)
	}
	if payload.SleepSeconds <= 0 {
		t.Fatalf("expected positive sleep, got %d", payload.SleepSeconds)
	}
}

func TestServerServesDefaultWhenProviderErrors(t *testing.T) {
	srv := newServerWithProvider(config.Config{}, nil, testutil.ErrProvider{Err: errors.New("upstream down")})

	payload := testutil.DecodePayload(t, testutil.Get(srv.Handler(), "/next"))
	if payload.Middle != display.NoGames {
		t.Fatalf("expected default payload, got %+v", payload)
	}
	if srv.Service().Status().ConsecutiveFailures != 1 {
		t.Fatalf("expected failure tracked on service status")
	}
}

func TestServerRecordsProviderMetrics(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	logger, buf := testutil.NewDebugBufferLogger()
	srv := newServerWithMetrics(config.Config{Provider: "stub"}, logger, testutil.EmptyProvider{}, rec)

	testutil.DecodePayload(t, testutil.Get(srv.Handler(), "/next"))

	if got := rec.ProviderCalls("stub"); got != 2 {
		t.Fatalf("expected today and next fetches recorded, got %d", got)
	}
	if got := rec.Resolutions(string(display.StateNoGames)); got != 1 {
		t.Fatalf("expected one no-games resolution, got %d", got)
	}
	out := buf.String()
	if !strings.Contains(out, "provider fetch complete") || !strings.Contains(out, "provider=stub") {
		t.Fatalf("expected per-fetch debug logs, got %q", out)
	}
}

func TestSelectProviderFallsBackToStatsAPI(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil)
	if _, ok := provider.(*statsapi.Client); !ok {
		t.Fatalf("expected statsapi fallback, got %T", provider)
	}
}

func TestSelectProviderChoosesFixture(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: config.ProviderFixture,
		Fixture:  config.FixtureConfig{NextFile: "next.json"},
	}, nil)
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider, got %T", provider)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: config.ProviderFixture,
		Fixture: config.FixtureConfig{
			TodayFile: "../providers/statsapi/testdata/today_empty.json",
			NextFile:  "../providers/statsapi/testdata/next.json",
		},
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}

	testutil.DecodePayload(t, testutil.Get(srv.Handler(), "/next"))
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if metricsSrv.ShutdownCalls != 1 || stopCalls != 1 {
		t.Fatalf("expected metrics shutdown even when flush fails")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &testutil.ErrHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, buf := testutil.NewBufferLogger()
	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{TeamID: 28}, logger, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
	if !strings.Contains(buf.String(), "shutdown complete") {
		t.Fatalf("expected shutdown log, got %q", buf.String())
	}
}

func TestServerHandlerPassthrough(t *testing.T) {
	mux := http.NewServeMux()
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.StubHTTPServer{HandlerVal: mux})
	if srv.Handler() != mux {
		t.Fatalf("expected handler passthrough")
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
}
