package events

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	domainevents "github.com/preston-bernstein/magtag-gateway/internal/domain/events"
)

const sourceName = "events"

// document is the on-disk layout of a dated-event list:
//
//	events:
//	  - title: Cuda vs Reign
//	    start: 2021-03-21T17:00:00-07:00
type document struct {
	Events []entry `yaml:"events"`
}

type entry struct {
	Title string `yaml:"title"`
	Start string `yaml:"start"`
}

// Source reads a YAML dated-event list on every fetch.
type Source struct {
	path  string
	label string
	open  func(name string) (io.ReadCloser, error)
}

// New builds a Source for the file at path whose payloads carry label as their top line.
func New(path, label string) *Source {
	return &Source{
		path:  path,
		label: label,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

func (s *Source) Name() string  { return sourceName }
func (s *Source) Label() string { return s.label }

// FetchEvents loads the list sorted by start.
func (s *Source) FetchEvents(ctx context.Context) ([]domainevents.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceName, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a dated-event list. Every entry needs a title and an RFC 3339 start.
func Decode(r io.Reader) ([]domainevents.Event, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: decode: %w", sourceName, err)
	}

	list := make([]domainevents.Event, 0, len(doc.Events))
	for i, e := range doc.Events {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return nil, fmt.Errorf("%s: entry %d: missing title", sourceName, i)
		}
		start, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Start))
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", sourceName, i, err)
		}
		list = append(list, domainevents.Event{Start: start, Title: title})
	}
	domainevents.SortByStart(list)
	return list, nil
}
