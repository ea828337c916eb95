package repository

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// MemoryStore keeps the latest corpus in process memory.
// Readers never block: a refresh builds a whole new corpus and swaps the pointer.
type MemoryStore struct {
	cur atomic.Pointer[model.Corpus]
	log zerolog.Logger
}

var _ CorpusStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store; Ping fails until the first Replace.
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	l := logger.With().Str("module", "repository").Str("component", "memory").Logger()
	return &MemoryStore{log: l}
}

func (s *MemoryStore) Current(ctx context.Context) (model.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return model.Corpus{}, err
	}
	c := s.cur.Load()
	if c == nil {
		return model.Corpus{}, ErrNotReady
	}
	return *c, nil
}

func (s *MemoryStore) Replace(ctx context.Context, c model.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prev := s.cur.Swap(&c)
	ev := s.log.Info().Str("corpus_id", c.ID).Int("matches", len(c.Matches))
	if prev != nil {
		ev = ev.Str("previous_id", prev.ID)
	}
	ev.Msg("corpus published")
	return nil
}

// Ping reports ready once a corpus has been published.
func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cur.Load() == nil {
		return ErrNotReady
	}
	return nil
}
