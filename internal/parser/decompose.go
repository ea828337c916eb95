package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// Decomposition is everything extracted from one free-text result field.
type Decomposition struct {
	Winners         []string
	Losers          []string
	MatchTime       string
	DurationMinutes float64
	Event           model.EventDetails
	IsTagTeam       bool
	IsPPV           bool
	IsHouseShow     bool
}

// Decomposer turns a result string like
// "A defeats B(c) (12:34) WWE Event - Type @ Venue in City, Country" into structured fields.
// It is safe for concurrent use.
type Decomposer struct {
	rules   Classifier
	eventRe *regexp.Regexp // nil when no event keywords are configured
}

// NewDecomposer compiles the classifier's keyword tables.
func NewDecomposer(rules Classifier) (*Decomposer, error) {
	if rules.VsPolicy == "" {
		rules.VsPolicy = VsHeuristic
	}
	if rules.VsPolicy != VsHeuristic && rules.VsPolicy != VsStrict {
		return nil, fmt.Errorf("unknown vs policy %q", rules.VsPolicy)
	}
	re, err := eventPattern(rules.EventKeywords)
	if err != nil {
		return nil, err
	}
	return &Decomposer{rules: rules, eventRe: re}, nil
}

// Decompose parses text for the wrestler whose file it came from.
// Missing delimiters degrade to placeholder strings; only an unresolvable
// result under the strict vs policy returns an error.
func (d *Decomposer) Decompose(text, home string) (Decomposition, error) {
	var out Decomposition
	out.MatchTime, out.DurationMinutes = ParseDuration(text)

	venue, city, country, region := splitLocation(text)
	name, kind := d.splitEvent(text)

	out.Event = model.EventDetails{
		Promotion:      d.rules.promotion(text),
		EventName:      name,
		EventType:      kind,
		Venue:          venue,
		City:           city,
		Country:        country,
		Region:         region,
		IsSpecialEvent: d.rules.isSpecial(name),
	}
	out.IsPPV = d.rules.isPPV(text, name)
	out.IsHouseShow = !out.IsPPV && d.rules.isHouseShow(name, kind)

	winners, losers, err := parseResult(text, home, d.rules.VsPolicy)
	if err != nil {
		return Decomposition{}, err
	}
	out.Winners, out.Losers = winners, losers
	out.IsTagTeam = len(winners) > 1 || len(losers) > 1 ||
		strings.Contains(text, "&") || strings.Contains(text, " and ")
	return out, nil
}

// splitLocation reads the clause after the last "@": "Venue in City, Region, Country".
func splitLocation(text string) (venue, city, country string, region []string) {
	venue, city, country = model.UnknownVenue, model.UnknownCity, model.UnknownCountry

	at := strings.LastIndex(text, "@")
	if at < 0 {
		return
	}
	clause := strings.TrimSpace(text[at+1:])
	if clause == "" {
		return
	}

	place, rest, found := strings.Cut(clause, " in ")
	if v := strings.TrimSpace(place); v != "" {
		venue = v
	}
	if !found {
		return
	}

	parts := strings.Split(rest, ", ")
	if c := strings.TrimSpace(parts[0]); c != "" {
		city = c
	}
	if c := strings.TrimSpace(parts[len(parts)-1]); c != "" {
		country = c
	}
	if len(parts) > 2 {
		for _, p := range parts[1 : len(parts)-1] {
			if p = strings.TrimSpace(p); p != "" {
				region = append(region, p)
			}
		}
	}
	return
}

// splitEvent takes "<keyword> Name - Type" up to the "@" or end of text.
func (d *Decomposer) splitEvent(text string) (name, kind string) {
	name, kind = model.UnknownEvent, model.UnknownType
	if d.eventRe == nil {
		return
	}
	m := d.eventRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	parts := strings.Split(strings.TrimSpace(m[1]), " - ")
	if n := strings.TrimSpace(parts[0]); n != "" {
		name = n
	}
	if len(parts) > 1 {
		if k := strings.TrimSpace(parts[1]); k != "" {
			kind = k
		}
	}
	return
}
