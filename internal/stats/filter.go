package stats

import (
	"slices"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

const isoDate = "2006-01-02"

// Filter returns the matches satisfying every set criterion, in input order.
// A zero criteria value keeps everything.
func Filter(matches []model.MatchRecord, c model.FilterCriteria) []model.MatchRecord {
	out := make([]model.MatchRecord, 0, len(matches))
	if c.IsZero() {
		return append(out, matches...)
	}

	var from, to string
	if c.DateRange != nil {
		if !c.DateRange.Start.IsZero() {
			from = c.DateRange.Start.Format(isoDate)
		}
		if !c.DateRange.End.IsZero() {
			to = c.DateRange.End.Format(isoDate)
		}
	}

	for _, m := range matches {
		if from != "" && m.Date < from {
			continue
		}
		if to != "" && m.Date > to {
			continue
		}
		if len(c.Promotions) > 0 && !slices.Contains(c.Promotions, m.Event.Promotion) {
			continue
		}
		if len(c.Venues) > 0 && !slices.Contains(c.Venues, m.Event.Venue) {
			continue
		}
		if len(c.Wrestlers) > 0 && !anyIn(m.Participants(), c.Wrestlers) {
			continue
		}
		if !matchesType(m, c.MatchType) || !matchesEvent(m, c.EventType) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func anyIn(names, allow []string) bool {
	for _, n := range names {
		if slices.Contains(allow, n) {
			return true
		}
	}
	return false
}

func matchesType(m model.MatchRecord, t model.MatchType) bool {
	switch t {
	case model.MatchTypeSingles:
		return !m.IsTagTeam
	case model.MatchTypeTag:
		return m.IsTagTeam
	case model.MatchTypeMulti:
		w, l := len(m.Winners), len(m.Losers)
		return w+l >= 3 && w != l
	default:
		return true
	}
}

func matchesEvent(m model.MatchRecord, t model.EventType) bool {
	switch t {
	case model.EventTypePPV:
		return m.IsPPV
	case model.EventTypeHouse:
		return m.IsHouseShow
	case model.EventTypeTV:
		return !m.IsPPV && !m.IsHouseShow
	default:
		return true
	}
}
