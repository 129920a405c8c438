package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerListenAndServeWithCustomListener(t *testing.T) {
	l := &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	srv := &http.Server{Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerServesOnLoopbackListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("loopback listener unavailable: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s := netHTTPServer{srv: &http.Server{Handler: mux}, listener: l}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + l.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("expected request to succeed, got %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	_ = s.Shutdown(context.Background())
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed after shutdown, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("serve did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	srv := &http.Server{Addr: ":1234", Handler: handler}
	s := netHTTPServer{srv: srv}

	if s.Addr() != ":1234" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
	_ = s.Shutdown(context.Background())
}
