package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches a team's schedule from the stats API and maps it to snapshots.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchToday returns the team's game on the upstream's current schedule day.
func (c *Client) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	body, err := c.get(ctx, "/schedule", map[string]string{
		"expand": "schedule.linescore",
		"teamId": strconv.Itoa(teamID),
	})
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return DecodeToday(body)
}

// FetchNext returns the team's next scheduled game.
func (c *Client) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	body, err := c.get(ctx, "/teams/"+strconv.Itoa(teamID), map[string]string{"expand": "team.schedule.next"})
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return DecodeNext(body)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		resp.Body.Close()
		return nil, providers.NewRateLimitError(providerName, resp)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		resp.Body.Close()
		return nil, fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp.Body, nil
}
