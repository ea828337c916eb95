package repository

import (
	"context"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CorpusReader hands out the current corpus snapshot.
// Callers must treat the returned matches as read-only; they are shared.
type CorpusReader interface {
	Current(ctx context.Context) (model.Corpus, error)
}

// CorpusWriter publishes a freshly loaded corpus, replacing the previous one whole.
type CorpusWriter interface {
	Replace(ctx context.Context, c model.Corpus) error
}

// CorpusStore is the full snapshot store contract.
type CorpusStore interface {
	Pinger
	CorpusReader
	CorpusWriter
}
