package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/magtag-gateway/internal/app/nextup"
	"github.com/preston-bernstein/magtag-gateway/internal/logging"
)

const (
	nextPath   = "/next"
	teamParam  = "team"
	maxTeamLen = 6
)

// NextUpService resolves display payloads.
type NextUpService interface {
	NextUp(ctx context.Context, req nextup.Request) nextup.Response
}

// Handler wires HTTP routes to the next-up service.
type Handler struct {
	svc      NextUpService
	logger   *slog.Logger
	statusFn func() nextup.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the
// service is always reported ready.
func NewHandler(svc NextUpService, logger *slog.Logger, statusFn func() nextup.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP routes requests without a mux; NewRouter is the usual entry point.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/":
		h.Root(w, r)
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == nextPath || strings.HasPrefix(r.URL.Path, nextPath+"/"):
		h.NextUp(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Root sends the bare host to the display endpoint.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	nethttp.Redirect(w, r, nextPath, nethttp.StatusFound)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the primary upstream is answering.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NextUp serves the display payload. The team comes from /next/{id} or
// ?team={id}; the path wins when both are present.
func (h *Handler) NextUp(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	teamID, ok := teamFromRequest(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	resp := h.svc.NextUp(r.Context(), nextup.Request{TeamID: teamID})
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served display payload",
		slog.Int(logging.FieldTeam, resp.TeamID),
		slog.String(logging.FieldState, string(resp.State)),
		slog.String(logging.FieldSource, resp.Source),
	)
	writeJSON(w, nethttp.StatusOK, resp.Payload, h.logger)
}

// teamFromRequest returns 0 when no team is named, meaning the configured default.
func teamFromRequest(r *nethttp.Request) (int, bool) {
	raw := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, nextPath), "/")
	if raw == "" {
		raw = r.URL.Query().Get(teamParam)
	}
	if raw == "" {
		return 0, true
	}
	return parseTeam(raw)
}

func parseTeam(raw string) (int, bool) {
	if len(raw) > maxTeamLen {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
