package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/http/handlers"
	"github.com/preston-bernstein/magtag-gateway/internal/testutil"
)

func newTestRouter() http.Handler {
	now := time.Date(2021, 3, 21, 12, 0, 0, 0, time.UTC)
	provider := testutil.GoodProvider{
		Next: testutil.SampleGame(now.Add(6*time.Hour), games.PhasePreview),
	}
	svc := testutil.NewService(provider, now)
	return NewRouter(handlers.NewHandler(svc, nil, svc.Status))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/":        http.StatusFound,
		"/health":  http.StatusOK,
		"/ready":   http.StatusOK,
		"/next":    http.StatusOK,
		"/next/":   http.StatusOK,
		"/next/28": http.StatusOK,
		"/next/xx": http.StatusBadRequest,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
