package scraped

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/magtag-gateway/internal/providers"
	"github.com/preston-bernstein/magtag-gateway/internal/testutil"
)

func TestParseScheduleRows(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "schedule.html"))
	require.NoError(t, err)
	defer f.Close()

	list, err := Parse(f)
	require.NoError(t, err)
	require.Len(t, list, 3)

	pdt := testutil.PDT
	assert.Equal(t, "vs Eagles", list[0].Title)
	assert.Equal(t, "@ Condors", list[1].Title)
	assert.True(t, list[1].Start.Equal(time.Date(2021, 3, 22, 18, 0, 0, 0, pdt)))
	assert.Equal(t, "vs Reign", list[2].Title)
}

func TestParseEmptyPage(t *testing.T) {
	list, err := Parse(strings.NewReader("<html><body><p>No games</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpponentTitle(t *testing.T) {
	cases := map[string]string{
		"@ Condors": "@ Condors",
		"@Condors":  "@ Condors",
		"vs. Reign": "vs Reign",
		"VS Reign":  "vs Reign",
		"Gulls":     "vs Gulls",
		"@ vs Heat": "@ Heat",
	}
	for in, want := range cases {
		got, ok := opponentTitle(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := opponentTitle("@ ")
	assert.False(t, ok)
}

func TestFetchEvents(t *testing.T) {
	page, err := os.ReadFile(filepath.Join("testdata", "schedule.html"))
	require.NoError(t, err)

	var requested string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		requested = req.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(string(page))),
			Header:     make(http.Header),
		}, nil
	})

	src := New(Config{
		URL:        "http://example.com/schedule",
		Label:      "Cuda Next",
		HTTPClient: &http.Client{Transport: rt},
	})

	list, err := src.FetchEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "http://example.com/schedule", requested)
	assert.Equal(t, "Cuda Next", src.Label())
	assert.Equal(t, "scraped", src.Name())
}

func TestFetchEventsStatusErrors(t *testing.T) {
	status := http.StatusInternalServerError
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     http.Header{"Retry-After": []string{"5"}},
		}, nil
	})
	src := New(Config{URL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := src.FetchEvents(context.Background())
	assert.ErrorContains(t, err, "500")

	status = http.StatusTooManyRequests
	_, err = src.FetchEvents(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, rl.RetryAfter)
}

func TestNewDefaultsHTTPClient(t *testing.T) {
	src := New(Config{URL: " http://example.com "})
	client, ok := src.httpClient.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, defaultHTTPTimeout, client.Timeout)
	assert.Equal(t, "http://example.com", src.url)
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
