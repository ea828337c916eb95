package model

import "time"

// MatchType narrows matches by side composition.
type MatchType string

const (
	MatchTypeAll     MatchType = "all"
	MatchTypeSingles MatchType = "singles"
	MatchTypeTag     MatchType = "tag"
	MatchTypeMulti   MatchType = "multi"
)

// Valid reports whether t is a known match type. The empty value counts as "all".
func (t MatchType) Valid() bool {
	switch t {
	case "", MatchTypeAll, MatchTypeSingles, MatchTypeTag, MatchTypeMulti:
		return true
	default:
		return false
	}
}

// EventType narrows matches by the kind of card they were on.
type EventType string

const (
	EventTypeAll   EventType = "all"
	EventTypePPV   EventType = "ppv"
	EventTypeTV    EventType = "tv"
	EventTypeHouse EventType = "house"
)

// Valid reports whether t is a known event type. The empty value counts as "all".
func (t EventType) Valid() bool {
	switch t {
	case "", EventTypeAll, EventTypePPV, EventTypeTV, EventTypeHouse:
		return true
	default:
		return false
	}
}

// DateRange is an inclusive calendar range. A zero bound is open.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FilterCriteria selects a subset of matches. Every empty field imposes no constraint
// and all set fields combine with logical AND.
type FilterCriteria struct {
	DateRange  *DateRange `json:"dateRange,omitempty"`
	Promotions []string   `json:"promotions,omitempty"`
	Wrestlers  []string   `json:"wrestlers,omitempty"`
	Venues     []string   `json:"venues,omitempty"`
	MatchType  MatchType  `json:"matchType,omitempty"`
	EventType  EventType  `json:"eventType,omitempty"`
}

// IsZero reports whether the criteria impose no constraint at all.
func (c FilterCriteria) IsZero() bool {
	return c.DateRange == nil &&
		len(c.Promotions) == 0 &&
		len(c.Wrestlers) == 0 &&
		len(c.Venues) == 0 &&
		(c.MatchType == "" || c.MatchType == MatchTypeAll) &&
		(c.EventType == "" || c.EventType == EventTypeAll)
}
