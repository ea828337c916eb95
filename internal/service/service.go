// Package service holds use-case orchestration between the loader, the snapshot store and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// InvalidInput reports field errors found outside the service, such as query binding.
// It returns nil when fe is empty.
func InvalidInput(fe ...FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// CorpusLoader runs one full load cycle.
type CorpusLoader interface {
	Load(ctx context.Context) (model.Corpus, error)
}

// SourceLister enumerates source names.
type SourceLister interface {
	List(ctx context.Context) ([]string, error)
}

// DashboardService defines the read side of the analytics dashboard plus corpus refresh.
// Every listing takes the same criteria so all views agree on the selected subset.
type DashboardService interface {
	Refresh(ctx context.Context) (model.CorpusSummary, error)
	Corpus(ctx context.Context) (model.CorpusSummary, error)
	ListMatches(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.MatchRecord], error)
	ListWrestlers(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.WrestlerStats], error)
	GetWrestler(ctx context.Context, name string, in CriteriaInput) (model.WrestlerStats, error)
	ListVenues(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.VenueStats], error)
	ListTagTeams(ctx context.Context, in CriteriaInput, page repository.Page) (repository.PageResult[model.TagTeamStats], error)
	Network(ctx context.Context, in CriteriaInput, opts NetworkInput) (model.NetworkGraph, error)
	HeroMetrics(ctx context.Context, in CriteriaInput) (model.HeroMetrics, error)
	FilterOptions(ctx context.Context) (model.FilterOptions, error)
	SearchSources(ctx context.Context, term string) ([]string, error)
}
