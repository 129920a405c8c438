package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/magtag-gateway/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/next", handler.NextUp)
	mux.HandleFunc("/next/", handler.NextUp)
	return mux
}
