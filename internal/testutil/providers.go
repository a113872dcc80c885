package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
)

// GoodProvider returns the provided games with no error.
type GoodProvider struct {
	Games []schedule.Game
}

func (p GoodProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	_ = ctx
	_ = q
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	return nil, p.Err
}

// EmptyProvider returns an empty schedule, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	return []schedule.Game{}, nil
}

// NilProvider returns a nil schedule, no error.
type NilProvider struct{}

func (NilProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	return nil, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	return nil, providers.ErrProviderUnavailable
}

// RecordingProvider returns Games and remembers every query it was asked for.
type RecordingProvider struct {
	Games []schedule.Game

	mu      sync.Mutex
	queries []schedule.Query
}

func (p *RecordingProvider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	_ = ctx
	p.mu.Lock()
	p.queries = append(p.queries, q)
	p.mu.Unlock()
	return p.Games, nil
}

// Queries returns a copy of the recorded queries.
func (p *RecordingProvider) Queries() []schedule.Query {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]schedule.Query(nil), p.queries...)
}
