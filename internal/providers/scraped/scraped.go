package scraped

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/events"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
)

const (
	sourceName         = "scraped"
	defaultHTTPTimeout = 10 * time.Second
	opponentClass      = "opponent"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls where the schedule page lives and how it is fetched.
type Config struct {
	URL        string
	Label      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Source scrapes a team's schedule page into dated events.
type Source struct {
	url        string
	label      string
	httpClient httpDoer
}

// New builds a scraping Source.
func New(cfg Config) *Source {
	var client httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Source{
		url:        strings.TrimSpace(cfg.URL),
		label:      cfg.Label,
		httpClient: client,
	}
}

func (s *Source) Name() string  { return sourceName }
func (s *Source) Label() string { return s.label }

// FetchEvents downloads the schedule page and parses its game rows.
func (s *Source) FetchEvents(ctx context.Context) ([]events.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, providers.NewRateLimitError(sourceName, resp)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s: unexpected status %d", sourceName, resp.StatusCode)
	}
	return Parse(resp.Body)
}

// Parse extracts game rows from a schedule page. A row is any <tr> holding a
// <time datetime="..."> element in RFC 3339 and a cell with class "opponent".
// An opponent cell starting with "@" marks an away game. Rows missing either
// part are skipped. The result is sorted by start.
func Parse(r io.Reader) ([]events.Event, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", sourceName, err)
	}

	var list []events.Event
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if e, ok := parseRow(n); ok {
				list = append(list, e)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	events.SortByStart(list)
	return list, nil
}

func parseRow(row *html.Node) (events.Event, bool) {
	var (
		start    time.Time
		opponent string
		haveTime bool
	)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "time" && !haveTime:
				if t, err := time.Parse(time.RFC3339, strings.TrimSpace(attr(n, "datetime"))); err == nil {
					start, haveTime = t, true
				}
			case hasClass(n, opponentClass) && opponent == "":
				opponent = collapseSpace(text(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(row)

	if !haveTime || opponent == "" {
		return events.Event{}, false
	}
	title, ok := opponentTitle(opponent)
	if !ok {
		return events.Event{}, false
	}
	return events.Event{Start: start, Title: title}, true
}

// opponentTitle renders "@ Name" for away games and "vs Name" otherwise.
func opponentTitle(raw string) (string, bool) {
	away := strings.HasPrefix(raw, "@")
	name := strings.TrimSpace(strings.TrimPrefix(raw, "@"))
	lower := strings.ToLower(name)
	for _, prefix := range []string{"vs. ", "vs "} {
		if strings.HasPrefix(lower, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}
	if name == "" {
		return "", false
	}
	if away {
		return "@ " + name, true
	}
	return "vs " + name, true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
