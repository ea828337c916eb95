package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
	isoDate          = "2006-01-02"
)

// CriteriaInput is the raw, client-supplied filter. Form tags double as field names in errors.
type CriteriaInput struct {
	From       string   `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string   `form:"to" validate:"omitempty,datetime=2006-01-02"`
	Promotions []string `form:"promotion"`
	Wrestlers  []string `form:"wrestler"`
	Venues     []string `form:"venue"`
	MatchType  string   `form:"match_type" validate:"omitempty,oneof=all singles tag multi"`
	EventType  string   `form:"event_type" validate:"omitempty,oneof=all ppv tv house"`
}

// NetworkInput bounds the network graph. Zero means the default.
type NetworkInput struct {
	MinMatches int `form:"min_matches" validate:"gte=0,lte=1000"`
	MaxNodes   int `form:"max_nodes" validate:"gte=0,lte=500"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// toFieldErrors flattens validator output into the API's FieldError shape.
func toFieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "request", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "is invalid"
	}
}

// ParseCriteria validates raw criteria and converts them into a FilterCriteria.
// Blank list entries are dropped; they never constrain.
func ParseCriteria(in CriteriaInput) (model.FilterCriteria, error) {
	in.From, in.To = strings.TrimSpace(in.From), strings.TrimSpace(in.To)
	in.MatchType = strings.ToLower(strings.TrimSpace(in.MatchType))
	in.EventType = strings.ToLower(strings.TrimSpace(in.EventType))

	if err := validate.Struct(in); err != nil {
		return model.FilterCriteria{}, newInvalidInput(toFieldErrors(err))
	}

	c := model.FilterCriteria{
		Promotions: compact(in.Promotions),
		Wrestlers:  compact(in.Wrestlers),
		Venues:     compact(in.Venues),
		MatchType:  model.MatchType(in.MatchType),
		EventType:  model.EventType(in.EventType),
	}
	if in.From != "" || in.To != "" {
		var r model.DateRange
		if in.From != "" {
			r.Start, _ = time.Parse(isoDate, in.From)
		}
		if in.To != "" {
			r.End, _ = time.Parse(isoDate, in.To)
		}
		if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
			return model.FilterCriteria{}, newInvalidInput([]FieldError{{Field: "to", Message: "must not be before from"}})
		}
		c.DateRange = &r
	}
	return c, nil
}

func validateNetwork(in NetworkInput) error {
	if err := validate.Struct(in); err != nil {
		return newInvalidInput(toFieldErrors(err))
	}
	return nil
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}
