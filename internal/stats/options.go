package stats

import "github.com/maxviazov/wrestling-analytics/internal/model"

// Options lists the distinct promotions, wrestlers and venue names, each sorted.
func Options(matches []model.MatchRecord) model.FilterOptions {
	promotions, wrestlers, venues := newOrderedSet(), newOrderedSet(), newOrderedSet()
	for _, m := range matches {
		promotions.add(m.Event.Promotion)
		wrestlers.addAll(m.Winners)
		wrestlers.addAll(m.Losers)
		venues.add(m.Event.Venue)
	}
	return model.FilterOptions{
		Promotions: promotions.sorted(),
		Wrestlers:  wrestlers.sorted(),
		Venues:     venues.sorted(),
	}
}
