package stats

import (
	"time"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// HeroMetrics computes corpus-wide headline numbers stamped with the current time.
func HeroMetrics(matches []model.MatchRecord) model.HeroMetrics {
	return HeroMetricsAt(matches, time.Now())
}

// HeroMetricsAt is HeroMetrics with an explicit computation time. Matches without a parsed
// duration are left out of the average rather than counted as zero.
func HeroMetricsAt(matches []model.MatchRecord, now time.Time) model.HeroMetrics {
	wrestlers := make(map[string]struct{})
	venues := make(map[string]struct{})
	promotions := make(map[string]struct{})
	var total float64
	var timed int

	for _, m := range matches {
		for _, p := range m.Winners {
			wrestlers[p] = struct{}{}
		}
		for _, p := range m.Losers {
			wrestlers[p] = struct{}{}
		}
		venues[m.Event.VenueKey()] = struct{}{}
		promotions[m.Event.Promotion] = struct{}{}
		if m.Timed() {
			total += m.MatchDurationMinutes
			timed++
		}
	}

	h := model.HeroMetrics{
		TotalMatches:    len(matches),
		TotalWrestlers:  len(wrestlers),
		TotalVenues:     len(venues),
		TotalPromotions: len(promotions),
		LastUpdated:     now,
	}
	if timed > 0 {
		h.AverageMatchTime = total / float64(timed)
	}
	return h
}
