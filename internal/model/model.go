// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior here is
// small derived accessors on MatchRecord.
package model

import "time"

// Promotion names produced by the default classifier.
const (
	PromotionWWE     = "WWE"
	PromotionAEW     = "AEW"
	PromotionNJPW    = "NJPW"
	PromotionImpact  = "Impact Wrestling"
	PromotionUnknown = "Unknown"
)

// Placeholders substituted when a delimiter or keyword is missing from the result text.
const (
	UnknownVenue    = "Unknown Venue"
	UnknownCity     = "Unknown City"
	UnknownCountry  = "Unknown Country"
	UnknownEvent    = "Unknown Event"
	UnknownType     = "Unknown Type"
	UnknownOpponent = "Unknown Opponent"
)

// EventDetails describes where and under which banner a match took place.
type EventDetails struct {
	Promotion      string   `json:"promotion" yaml:"promotion"`
	EventName      string   `json:"eventName" yaml:"event_name"`
	EventType      string   `json:"eventType" yaml:"event_type"`
	Venue          string   `json:"venue" yaml:"venue"`
	City           string   `json:"city" yaml:"city"`
	Country        string   `json:"country" yaml:"country"`
	Region         []string `json:"region,omitempty" yaml:"region,omitempty"` // components between city and country
	IsSpecialEvent bool     `json:"isSpecialEvent" yaml:"is_special_event"`
}

// VenueKey identifies a venue; the same venue name in two cities is two venues.
func (e EventDetails) VenueKey() string {
	return e.Venue + "-" + e.City
}

// MatchRecord is one parsed match. It is built once per load cycle and never mutated.
type MatchRecord struct {
	ID                   string       `json:"id" yaml:"id"`
	Date                 string       `json:"date" yaml:"date"` // YYYY-MM-DD
	Winners              []string     `json:"winners" yaml:"winners"`
	Losers               []string     `json:"losers" yaml:"losers"`
	MatchTime            string       `json:"matchTime" yaml:"match_time"` // raw M:SS token, "0:00" when absent
	MatchDurationMinutes float64      `json:"matchDurationMinutes" yaml:"match_duration_minutes"`
	Event                EventDetails `json:"event" yaml:"event"`
	IsTagTeam            bool         `json:"isTagTeam" yaml:"is_tag_team"`
	IsPPV                bool         `json:"isPPV" yaml:"is_ppv"`
	IsHouseShow          bool         `json:"isHouseShow" yaml:"is_house_show"`
	Source               string       `json:"source" yaml:"source"` // file the record was first read from
}

// Participants returns winners followed by losers in a fresh slice.
func (m MatchRecord) Participants() []string {
	out := make([]string, 0, len(m.Winners)+len(m.Losers))
	out = append(out, m.Winners...)
	return append(out, m.Losers...)
}

// DedupKey is the composite key the loader deduplicates on.
func (m MatchRecord) DedupKey() string {
	return m.Date + "|" + m.ID
}

// Timed reports whether a duration was parsed for the match.
func (m MatchRecord) Timed() bool {
	return m.MatchDurationMinutes > 0
}

// WrestlerStats is recomputed from scratch on every aggregation pass.
type WrestlerStats struct {
	Name             string   `json:"name" yaml:"name"`
	TotalMatches     int      `json:"totalMatches" yaml:"total_matches"`
	Wins             int      `json:"wins" yaml:"wins"`
	Losses           int      `json:"losses" yaml:"losses"`
	WinRate          float64  `json:"winRate" yaml:"win_rate"`
	AverageMatchTime float64  `json:"averageMatchTime" yaml:"average_match_time"`
	TimedMatches     int      `json:"timedMatches" yaml:"timed_matches"`
	Opponents        []string `json:"opponents" yaml:"opponents"`
	Venues           []string `json:"venues" yaml:"venues"`
	Promotions       []string `json:"promotions" yaml:"promotions"`
	TagPartners      []string `json:"tagPartners" yaml:"tag_partners"`
	PPVMatches       int      `json:"ppvMatches" yaml:"ppv_matches"`
}

// VenueStats aggregates every match held at one venue+city.
type VenueStats struct {
	Key              string   `json:"key" yaml:"key"`
	Name             string   `json:"name" yaml:"name"`
	City             string   `json:"city" yaml:"city"`
	Country          string   `json:"country" yaml:"country"`
	TotalMatches     int      `json:"totalMatches" yaml:"total_matches"`
	Wrestlers        []string `json:"wrestlers" yaml:"wrestlers"`
	Promotions       []string `json:"promotions" yaml:"promotions"`
	AverageMatchTime float64  `json:"averageMatchTime" yaml:"average_match_time"`
	TimedMatches     int      `json:"timedMatches" yaml:"timed_matches"`
}

// TagTeamStats aggregates results of one multi-member side, identified by its sorted members.
type TagTeamStats struct {
	Name             string   `json:"name" yaml:"name"`
	Members          []string `json:"members" yaml:"members"`
	TotalMatches     int      `json:"totalMatches" yaml:"total_matches"`
	Wins             int      `json:"wins" yaml:"wins"`
	Losses           int      `json:"losses" yaml:"losses"`
	WinRate          float64  `json:"winRate" yaml:"win_rate"`
	AverageMatchTime float64  `json:"averageMatchTime" yaml:"average_match_time"`
	TimedMatches     int      `json:"timedMatches" yaml:"timed_matches"`
	Opponents        []string `json:"opponents" yaml:"opponents"`
}

// HeroMetrics holds corpus-wide headline numbers.
// LastUpdated is when the metrics were computed, not when the data was loaded.
type HeroMetrics struct {
	TotalMatches     int       `json:"totalMatches" yaml:"total_matches"`
	TotalWrestlers   int       `json:"totalWrestlers" yaml:"total_wrestlers"`
	TotalVenues      int       `json:"totalVenues" yaml:"total_venues"`
	TotalPromotions  int       `json:"totalPromotions" yaml:"total_promotions"`
	AverageMatchTime float64   `json:"averageMatchTime" yaml:"average_match_time"`
	LastUpdated      time.Time `json:"lastUpdated" yaml:"last_updated"`
}

// NetworkNode is one wrestler in the opponent/partner graph.
type NetworkNode struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Group        string  `json:"group"` // most frequent promotion
	TotalMatches int     `json:"totalMatches"`
	Wins         int     `json:"wins"`
	Radius       float64 `json:"radius"`
}

// NetworkLink connects two wrestlers who shared a ring.
type NetworkLink struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Value      int    `json:"value"`
	MatchCount int    `json:"matchCount"`
}

// NetworkGraph is the shape consumed by the force-directed visualization.
type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

// FilterOptions lists the distinct facet values a filter UI offers.
type FilterOptions struct {
	Promotions []string `json:"promotions"`
	Wrestlers  []string `json:"wrestlers"`
	Venues     []string `json:"venues"`
}
