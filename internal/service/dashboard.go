package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/repository"
	"github.com/maxviazov/wrestling-analytics/internal/source"
	"github.com/maxviazov/wrestling-analytics/internal/stats"
)

// dashboardService serves aggregates over the current corpus snapshot.
// Aggregates are computed per request from the filtered matches; they are pure and cheap.
type dashboardService struct {
	loader  CorpusLoader
	store   repository.CorpusStore
	sources SourceLister
	now     func() time.Time
	log     zerolog.Logger

	refreshing sync.Mutex
}

// NewDashboardService wires the dashboard use cases. sources may be nil, in which case
// source search falls back to the names recorded in the current corpus.
func NewDashboardService(loader CorpusLoader, store repository.CorpusStore, sources SourceLister, logger zerolog.Logger) DashboardService {
	l := logger.With().Str("module", "service").Str("component", "dashboard").Logger()
	return &dashboardService{loader: loader, store: store, sources: sources, now: time.Now, log: l}
}

// Refresh loads a new corpus and publishes it. A failed load leaves the previous
// snapshot in place. Only one refresh runs at a time; a concurrent call gets ErrConflict.
func (s *dashboardService) Refresh(ctx context.Context) (model.CorpusSummary, error) {
	if !s.refreshing.TryLock() {
		return model.CorpusSummary{}, fmt.Errorf("refresh already running: %w", repository.ErrConflict)
	}
	defer s.refreshing.Unlock()

	start := time.Now()
	corpus, err := s.loader.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("corpus_id", corpus.ID).Msg("refresh failed, keeping previous corpus")
		return corpus.Summary(), fmt.Errorf("refresh: %w", err)
	}
	if err := s.store.Replace(ctx, corpus); err != nil {
		return model.CorpusSummary{}, fmt.Errorf("publish corpus: %w", err)
	}
	s.log.Info().
		Dur("took", time.Since(start)).
		Str("corpus_id", corpus.ID).
		Int("matches", len(corpus.Matches)).
		Msg("corpus refreshed")
	return corpus.Summary(), nil
}

func (s *dashboardService) Corpus(ctx context.Context) (model.CorpusSummary, error) {
	c, err := s.store.Current(ctx)
	if err != nil {
		return model.CorpusSummary{}, err
	}
	return c.Summary(), nil
}

// filtered validates the criteria and applies them to the current snapshot.
func (s *dashboardService) filtered(ctx context.Context, in CriteriaInput) ([]model.MatchRecord, error) {
	criteria, err := ParseCriteria(in)
	if err != nil {
		s.log.Debug().Interface("criteria", in).Interface("field_errors", FieldErrors(err)).Msg("criteria validation failed")
		return nil, err
	}
	c, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Filter(c.Matches, criteria), nil
}

func (s *dashboardService) ListMatches(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.MatchRecord], error) {
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return repository.PageResult[model.MatchRecord]{}, err
	}
	return repository.Paginate(matches, normalizePage(page)), nil
}

func (s *dashboardService) ListWrestlers(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.WrestlerStats], error) {
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return repository.PageResult[model.WrestlerStats]{}, err
	}
	return repository.Paginate(stats.WrestlerStats(matches), normalizePage(page)), nil
}

func (s *dashboardService) GetWrestler(ctx context.Context, name string, in CriteriaInput) (model.WrestlerStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.WrestlerStats{}, newInvalidInput([]FieldError{{Field: "name", Message: "must not be empty"}})
	}
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return model.WrestlerStats{}, err
	}
	ws, ok := stats.Wrestler(matches, name)
	if !ok {
		return model.WrestlerStats{}, fmt.Errorf("wrestler %q: %w", name, repository.ErrNotFound)
	}
	return ws, nil
}

func (s *dashboardService) ListVenues(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.VenueStats], error) {
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return repository.PageResult[model.VenueStats]{}, err
	}
	return repository.Paginate(stats.VenueStats(matches), normalizePage(page)), nil
}

func (s *dashboardService) ListTagTeams(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.TagTeamStats], error) {
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return repository.PageResult[model.TagTeamStats]{}, err
	}
	return repository.Paginate(stats.TagTeamStats(matches), normalizePage(page)), nil
}

func (s *dashboardService) Network(ctx context.Context, in CriteriaInput, opts NetworkInput) (model.NetworkGraph, error) {
	if err := validateNetwork(opts); err != nil {
		return model.NetworkGraph{}, err
	}
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return model.NetworkGraph{}, err
	}
	return stats.Network(matches, stats.NetworkOptions{MinMatches: opts.MinMatches, MaxNodes: opts.MaxNodes}), nil
}

func (s *dashboardService) HeroMetrics(ctx context.Context, in CriteriaInput) (model.HeroMetrics, error) {
	matches, err := s.filtered(ctx, in)
	if err != nil {
		return model.HeroMetrics{}, err
	}
	return stats.HeroMetricsAt(matches, s.now()), nil
}

// FilterOptions always reflects the whole corpus so the UI can widen a selection again.
func (s *dashboardService) FilterOptions(ctx context.Context) (model.FilterOptions, error) {
	c, err := s.store.Current(ctx)
	if err != nil {
		return model.FilterOptions{}, err
	}
	return stats.Options(c.Matches), nil
}

// SearchSources finds source names containing term. Sources are enumerated through the
// lister when it supports discovery, otherwise taken from the current corpus reports.
func (s *dashboardService) SearchSources(ctx context.Context, term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, newInvalidInput([]FieldError{{Field: "q", Message: "must not be empty"}})
	}

	var names []string
	if s.sources != nil {
		listed, err := s.sources.List(ctx)
		switch {
		case err == nil:
			names = listed
		case errors.Is(err, source.ErrDiscoveryUnsupported):
		default:
			s.log.Error().Err(err).Msg("list sources failed")
			return nil, err
		}
	}
	if names == nil {
		c, err := s.store.Current(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range c.Sources {
			names = append(names, r.Name)
		}
	}
	return source.Search(names, term), nil
}
