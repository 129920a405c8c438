package fixture

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/providers/statsapi"
)

const providerName = "fixture"

// Provider serves stats API documents saved on disk, for offline runs.
// The documents are already scoped to one team, so the requested team id is
// not used to filter them.
type Provider struct {
	todayPath string
	nextPath  string
	open      func(name string) (io.ReadCloser, error)
}

// New creates a fixture provider. An empty path makes that query report no game.
func New(todayPath, nextPath string) *Provider {
	return &Provider{
		todayPath: todayPath,
		nextPath:  nextPath,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return providerName }

// FetchToday decodes the saved schedule document.
func (p *Provider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return p.load(ctx, p.todayPath, statsapi.DecodeToday)
}

// FetchNext decodes the saved team schedule document.
func (p *Provider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return p.load(ctx, p.nextPath, statsapi.DecodeNext)
}

func (p *Provider) load(ctx context.Context, path string, decode func(io.Reader) (*games.Snapshot, error)) (*games.Snapshot, error) {
	if path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := p.open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}
	defer f.Close()
	return decode(f)
}
