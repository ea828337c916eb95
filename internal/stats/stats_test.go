package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/stats"
)

func match(date string, winners, losers []string, minutes float64, promo, venue, city string) model.MatchRecord {
	return model.MatchRecord{
		ID:                   date + "-" + winners[0] + "-" + losers[0],
		Date:                 date,
		Winners:              winners,
		Losers:               losers,
		MatchDurationMinutes: minutes,
		Event:                model.EventDetails{Promotion: promo, Venue: venue, City: city},
		IsTagTeam:            len(winners) > 1 || len(losers) > 1,
	}
}

func corpus() []model.MatchRecord {
	ppv := match("2024-04-07", []string{"Cody"}, []string{"Roman"}, 30, "WWE", "Lincoln Financial Field", "Philadelphia")
	ppv.IsPPV = true
	house := match("2024-03-01", []string{"Roman"}, []string{"Cody"}, 0, "WWE", "Arena", "Town")
	house.IsHouseShow = true
	return []model.MatchRecord{
		ppv,
		house,
		match("2024-02-10", []string{"Cody", "Seth"}, []string{"Roman", "Rock"}, 20, "WWE", "Arena", "Town"),
		match("2024-01-05", []string{"Okada"}, []string{"Cody", "Roman", "Seth"}, 10, "AEW", "Arena", "Other Town"),
	}
}

func byName(t *testing.T, list []model.WrestlerStats, name string) model.WrestlerStats {
	t.Helper()
	for _, s := range list {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("wrestler %q not found", name)
	return model.WrestlerStats{}
}

func TestWrestlerStats(t *testing.T) {
	got := stats.WrestlerStats(corpus())
	require.Len(t, got, 5)

	cody := byName(t, got, "Cody")
	assert.Equal(t, 4, cody.TotalMatches)
	assert.Equal(t, 2, cody.Wins)
	assert.Equal(t, 2, cody.Losses)
	assert.InDelta(t, 50.0, cody.WinRate, 1e-9)
	assert.Equal(t, 3, cody.TimedMatches)
	assert.InDelta(t, 20.0, cody.AverageMatchTime, 1e-9, "untimed match is excluded from the mean")
	assert.Equal(t, []string{"Roman", "Rock", "Okada"}, cody.Opponents)
	assert.Equal(t, []string{"Seth", "Roman"}, cody.TagPartners)
	assert.Equal(t, []string{"Lincoln Financial Field", "Arena"}, cody.Venues)
	assert.Equal(t, []string{"WWE", "AEW"}, cody.Promotions)
	assert.Equal(t, 1, cody.PPVMatches)

	assert.Equal(t, "Cody", got[0].Name, "busiest first")
	assert.Equal(t, "Roman", got[1].Name, "ties keep encounter order")
}

func TestWrestlerStats_Invariants(t *testing.T) {
	for _, s := range stats.WrestlerStats(corpus()) {
		assert.Equal(t, s.TotalMatches, s.Wins+s.Losses, s.Name)
		assert.GreaterOrEqual(t, s.WinRate, 0.0)
		assert.LessOrEqual(t, s.WinRate, 100.0)
		assert.NotContains(t, s.TagPartners, s.Name)
	}
}

func TestWrestlerStats_Empty(t *testing.T) {
	assert.Empty(t, stats.WrestlerStats(nil))
	assert.NotNil(t, stats.WrestlerStats(nil))
	assert.Empty(t, stats.VenueStats(nil))
	assert.Empty(t, stats.TagTeamStats(nil))
}

func TestWrestlerStats_Idempotent(t *testing.T) {
	in := corpus()
	assert.Equal(t, stats.WrestlerStats(in), stats.WrestlerStats(in))
	assert.Equal(t, corpus(), in, "input is not mutated")
}

func TestWrestler(t *testing.T) {
	s, ok := stats.Wrestler(corpus(), "Okada")
	require.True(t, ok)
	assert.Equal(t, 1, s.Wins)

	_, ok = stats.Wrestler(corpus(), "Nobody")
	assert.False(t, ok)
}

func TestVenueStats(t *testing.T) {
	got := stats.VenueStats(corpus())
	require.Len(t, got, 3)

	assert.Equal(t, "Arena-Town", got[0].Key)
	assert.Equal(t, 2, got[0].TotalMatches)
	assert.Equal(t, 1, got[0].TimedMatches)
	assert.InDelta(t, 20.0, got[0].AverageMatchTime, 1e-9)
	assert.Equal(t, []string{"Roman", "Cody", "Seth", "Rock"}, got[0].Wrestlers)
	assert.Equal(t, "Arena-Other Town", got[2].Key, "same venue in another city is a different venue")
}

func TestHeroMetricsAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h := stats.HeroMetricsAt(corpus(), now)

	assert.Equal(t, 4, h.TotalMatches)
	assert.Equal(t, 5, h.TotalWrestlers)
	assert.Equal(t, 3, h.TotalVenues)
	assert.Equal(t, 2, h.TotalPromotions)
	assert.InDelta(t, 20.0, h.AverageMatchTime, 1e-9)
	assert.Equal(t, now, h.LastUpdated)

	empty := stats.HeroMetricsAt(nil, now)
	assert.Zero(t, empty.TotalMatches)
	assert.Zero(t, empty.AverageMatchTime)
}

func TestFilter(t *testing.T) {
	all := corpus()
	cases := []struct {
		name     string
		criteria model.FilterCriteria
		want     []string // dates
	}{
		{"zero criteria keeps everything", model.FilterCriteria{}, []string{"2024-04-07", "2024-03-01", "2024-02-10", "2024-01-05"}},
		{"explicit all", model.FilterCriteria{MatchType: model.MatchTypeAll, EventType: model.EventTypeAll}, []string{"2024-04-07", "2024-03-01", "2024-02-10", "2024-01-05"}},
		{"date range inclusive", model.FilterCriteria{DateRange: &model.DateRange{
			Start: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}}, []string{"2024-03-01", "2024-02-10"}},
		{"open start", model.FilterCriteria{DateRange: &model.DateRange{End: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}}, []string{"2024-01-05"}},
		{"promotion", model.FilterCriteria{Promotions: []string{"AEW"}}, []string{"2024-01-05"}},
		{"wrestler on either side", model.FilterCriteria{Wrestlers: []string{"Rock", "Okada"}}, []string{"2024-02-10", "2024-01-05"}},
		{"venue", model.FilterCriteria{Venues: []string{"Lincoln Financial Field"}}, []string{"2024-04-07"}},
		{"singles", model.FilterCriteria{MatchType: model.MatchTypeSingles}, []string{"2024-04-07", "2024-03-01"}},
		{"tag", model.FilterCriteria{MatchType: model.MatchTypeTag}, []string{"2024-02-10", "2024-01-05"}},
		{"multi", model.FilterCriteria{MatchType: model.MatchTypeMulti}, []string{"2024-01-05"}},
		{"ppv", model.FilterCriteria{EventType: model.EventTypePPV}, []string{"2024-04-07"}},
		{"house", model.FilterCriteria{EventType: model.EventTypeHouse}, []string{"2024-03-01"}},
		{"tv", model.FilterCriteria{EventType: model.EventTypeTV}, []string{"2024-02-10", "2024-01-05"}},
		{"criteria combine with AND", model.FilterCriteria{Promotions: []string{"WWE"}, MatchType: model.MatchTypeTag}, []string{"2024-02-10"}},
		{"no match", model.FilterCriteria{Wrestlers: []string{"Nobody"}}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stats.Filter(all, tc.criteria)
			dates := make([]string, 0, len(got))
			for _, m := range got {
				dates = append(dates, m.Date)
			}
			assert.Equal(t, tc.want, dates)
		})
	}
}

func TestFilter_IsSubsetAndStable(t *testing.T) {
	all := corpus()
	c := model.FilterCriteria{Promotions: []string{"WWE"}}
	once := stats.Filter(all, c)
	assert.Equal(t, once, stats.Filter(once, c))
	assert.Equal(t, corpus(), all)
}

func TestTagTeamStats(t *testing.T) {
	extra := match("2024-05-01", []string{"Seth", "Cody"}, []string{"Okada"}, 0, "WWE", "Arena", "Town")
	got := stats.TagTeamStats(append(corpus(), extra))
	require.Len(t, got, 3)

	assert.Equal(t, "Cody & Seth", got[0].Name)
	assert.Equal(t, []string{"Cody", "Seth"}, got[0].Members)
	assert.Equal(t, 2, got[0].TotalMatches)
	assert.Equal(t, 2, got[0].Wins)
	assert.InDelta(t, 100.0, got[0].WinRate, 1e-9)
	assert.Equal(t, 1, got[0].TimedMatches)
	assert.Equal(t, []string{"Roman", "Rock", "Okada"}, got[0].Opponents)

	assert.Equal(t, "Rock & Roman", got[1].Name)
	assert.Equal(t, 1, got[1].Losses)
	assert.Equal(t, "Cody & Roman & Seth", got[2].Name)
}

func TestNetwork(t *testing.T) {
	g := stats.Network(corpus(), stats.NetworkOptions{})

	names := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Cody", "Roman", "Seth"}, names, "Rock and Okada have a single match")

	cody := g.Nodes[0]
	assert.Equal(t, 4, cody.TotalMatches)
	assert.Equal(t, 2, cody.Wins)
	assert.Equal(t, "WWE", cody.Group)
	assert.InDelta(t, 8.0, cody.Radius, 1e-9)
	assert.InDelta(t, 5.0, g.Nodes[2].Radius, 1e-9, "radius floor")

	require.Len(t, g.Links, 3)
	assert.Equal(t, model.NetworkLink{Source: "Cody", Target: "Roman", Value: 8, MatchCount: 4}, g.Links[0])
	for _, l := range g.Links {
		assert.Less(t, l.Source, l.Target)
		assert.LessOrEqual(t, l.Value, 10)
	}
}

func TestNetwork_Limits(t *testing.T) {
	g := stats.Network(corpus(), stats.NetworkOptions{MinMatches: 1, MaxNodes: 2})
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Links, 1)
	assert.Equal(t, "Cody", g.Links[0].Source)

	empty := stats.Network(nil, stats.NetworkOptions{})
	assert.NotNil(t, empty.Nodes)
	assert.NotNil(t, empty.Links)
}

func TestOptions(t *testing.T) {
	o := stats.Options(corpus())
	assert.Equal(t, []string{"AEW", "WWE"}, o.Promotions)
	assert.Equal(t, []string{"Cody", "Okada", "Rock", "Roman", "Seth"}, o.Wrestlers)
	assert.Equal(t, []string{"Arena", "Lincoln Financial Field"}, o.Venues)
}
