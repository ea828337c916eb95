package stats

import (
	"sort"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

type wrestlerAcc struct {
	stats       model.WrestlerStats
	opponents   *orderedSet
	venues      *orderedSet
	promotions  *orderedSet
	tagPartners *orderedSet
}

// WrestlerStats builds one WrestlerStats per participant, busiest first.
// Both sides of every match are updated symmetrically. Averages only count matches
// with a parsed duration.
func WrestlerStats(matches []model.MatchRecord) []model.WrestlerStats {
	index := make(map[string]int)
	var accs []*wrestlerAcc

	get := func(name string) *wrestlerAcc {
		if i, ok := index[name]; ok {
			return accs[i]
		}
		acc := &wrestlerAcc{
			stats:       model.WrestlerStats{Name: name},
			opponents:   newOrderedSet(),
			venues:      newOrderedSet(),
			promotions:  newOrderedSet(),
			tagPartners: newOrderedSet(),
		}
		index[name] = len(accs)
		accs = append(accs, acc)
		return acc
	}

	for _, m := range matches {
		for _, w := range m.Winners {
			get(w).update(w, m, m.Winners, m.Losers, true)
		}
		for _, l := range m.Losers {
			get(l).update(l, m, m.Losers, m.Winners, false)
		}
	}

	out := make([]model.WrestlerStats, 0, len(accs))
	for _, acc := range accs {
		s := acc.stats
		s.WinRate = winRate(s.Wins, s.TotalMatches)
		s.Opponents = acc.opponents.list()
		s.Venues = acc.venues.list()
		s.Promotions = acc.promotions.list()
		s.TagPartners = acc.tagPartners.list()
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalMatches > out[j].TotalMatches })
	return out
}

func (a *wrestlerAcc) update(self string, m model.MatchRecord, side, other []string, won bool) {
	a.stats.TotalMatches++
	if won {
		a.stats.Wins++
	} else {
		a.stats.Losses++
	}
	a.opponents.addAll(other)
	for _, p := range side {
		if p != self {
			a.tagPartners.add(p)
		}
	}
	a.venues.add(m.Event.Venue)
	a.promotions.add(m.Event.Promotion)
	if m.IsPPV {
		a.stats.PPVMatches++
	}
	if m.Timed() {
		a.stats.TimedMatches++
		a.stats.AverageMatchTime = runningMean(a.stats.AverageMatchTime, a.stats.TimedMatches, m.MatchDurationMinutes)
	}
}

// Wrestler returns the stats of one participant, if it appears in matches.
func Wrestler(matches []model.MatchRecord, name string) (model.WrestlerStats, bool) {
	for _, s := range WrestlerStats(matches) {
		if s.Name == name {
			return s, true
		}
	}
	return model.WrestlerStats{}, false
}
