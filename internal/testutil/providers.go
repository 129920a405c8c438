package testutil

import (
	"context"

	"github.com/preston-bernstein/magtag-gateway/internal/domain/games"
	"github.com/preston-bernstein/magtag-gateway/internal/providers"
)

// GoodProvider returns the provided snapshots with no error.
type GoodProvider struct {
	Today *games.Snapshot
	Next  *games.Snapshot
}

func (p GoodProvider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return p.Today, nil
}

func (p GoodProvider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return p.Next, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return nil, p.Err
}

// EmptyProvider reports no games, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return nil, nil
}

func (EmptyProvider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return nil, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchToday(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchNext(ctx context.Context, teamID int) (*games.Snapshot, error) {
	return nil, providers.ErrProviderUnavailable
}
