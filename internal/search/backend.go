package search

import (
	"context"
	"time"

	"amphi/internal/domain"
)

// DefaultLatency is the simulated round trip of the static backend
const DefaultLatency = 300 * time.Millisecond

// Backend answers a query with an ordered, possibly empty, result list.
// Implementations must return promptly once ctx is done.
type Backend interface {
	Query(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// StaticBackend filters the in-memory corpus after a simulated delay
type StaticBackend struct {
	items   []domain.SearchResult
	latency time.Duration
}

// NewStaticBackend creates a backend over the built-in corpus
func NewStaticBackend(latency time.Duration) *StaticBackend {
	return &StaticBackend{items: Corpus(), latency: latency}
}

// NewStaticBackendWith creates a backend over the given items
func NewStaticBackendWith(items []domain.SearchResult, latency time.Duration) *StaticBackend {
	return &StaticBackend{items: items, latency: latency}
}

// Query implements Backend
func (b *StaticBackend) Query(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if b.latency > 0 {
		timer := time.NewTimer(b.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Filter(b.items, query), nil
}
