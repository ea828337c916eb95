package stats

import (
	"sort"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// VenueStats builds one VenueStats per venue+city, busiest first.
func VenueStats(matches []model.MatchRecord) []model.VenueStats {
	index := make(map[string]int)
	var out []model.VenueStats
	var wrestlers, promotions []*orderedSet

	for _, m := range matches {
		key := m.Event.VenueKey()
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.VenueStats{
				Key:     key,
				Name:    m.Event.Venue,
				City:    m.Event.City,
				Country: m.Event.Country,
			})
			wrestlers = append(wrestlers, newOrderedSet())
			promotions = append(promotions, newOrderedSet())
		}

		v := &out[i]
		v.TotalMatches++
		wrestlers[i].addAll(m.Winners)
		wrestlers[i].addAll(m.Losers)
		promotions[i].add(m.Event.Promotion)
		if m.Timed() {
			v.TimedMatches++
			v.AverageMatchTime = runningMean(v.AverageMatchTime, v.TimedMatches, m.MatchDurationMinutes)
		}
	}

	for i := range out {
		out[i].Wrestlers = wrestlers[i].list()
		out[i].Promotions = promotions[i].list()
	}
	if out == nil {
		out = []model.VenueStats{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalMatches > out[j].TotalMatches })
	return out
}
