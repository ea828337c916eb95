package stats

import (
	"slices"
	"sort"
	"strings"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// TagTeamStats aggregates every side with more than one member. A team is the
// sorted member list, so "B & A" and "A & B" are the same team.
func TagTeamStats(matches []model.MatchRecord) []model.TagTeamStats {
	index := make(map[string]int)
	out := []model.TagTeamStats{}
	var opponents []*orderedSet

	record := func(side, other []string, m model.MatchRecord, won bool) {
		if len(side) < 2 {
			return
		}
		members := slices.Clone(side)
		sort.Strings(members)
		key := strings.Join(members, " & ")

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, model.TagTeamStats{Name: key, Members: members})
			opponents = append(opponents, newOrderedSet())
		}
		t := &out[i]
		t.TotalMatches++
		if won {
			t.Wins++
		} else {
			t.Losses++
		}
		opponents[i].addAll(other)
		if m.Timed() {
			t.TimedMatches++
			t.AverageMatchTime = runningMean(t.AverageMatchTime, t.TimedMatches, m.MatchDurationMinutes)
		}
	}

	for _, m := range matches {
		record(m.Winners, m.Losers, m, true)
		record(m.Losers, m.Winners, m, false)
	}

	for i := range out {
		out[i].WinRate = winRate(out[i].Wins, out[i].TotalMatches)
		out[i].Opponents = opponents[i].list()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalMatches > out[j].TotalMatches })
	return out
}
