package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrProviderUnavailable is returned when a provider wrapper has nothing to call.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// NewRateLimitError builds a RateLimitError from a 429 response's headers.
func NewRateLimitError(provider string, resp *http.Response) *RateLimitError {
	rl := &RateLimitError{Provider: provider, Message: provider + ": rate limited"}
	if resp == nil {
		return rl
	}
	rl.StatusCode = resp.StatusCode
	rl.RetryAfter = ParseRetryAfter(resp.Header.Get("Retry-After"))
	return rl
}

// ParseRetryAfter reads a Retry-After header given in seconds. Other forms yield zero.
func ParseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
