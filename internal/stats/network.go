package stats

import (
	"github.com/maxviazov/wrestling-analytics/internal/model"
)

const (
	DefaultMinMatches = 2
	DefaultMaxNodes   = 50

	minRadius    = 5
	maxRadius    = 25
	maxLinkValue = 10
)

// NetworkOptions bounds the graph size. Non-positive values fall back to the defaults.
type NetworkOptions struct {
	MinMatches int
	MaxNodes   int
}

type pair struct{ a, b string }

// Network builds the wrestler graph: a node per wrestler with at least MinMatches
// matches (first MaxNodes in encounter order) and a link between every two nodes
// who appeared in the same match.
func Network(matches []model.MatchRecord, opts NetworkOptions) model.NetworkGraph {
	if opts.MinMatches <= 0 {
		opts.MinMatches = DefaultMinMatches
	}
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = DefaultMaxNodes
	}

	type tally struct {
		total, wins int
		promos      map[string]int
		order       []string
	}
	seen := make(map[string]*tally)
	var names []string
	touch := func(name, promotion string, won bool) {
		t, ok := seen[name]
		if !ok {
			t = &tally{promos: make(map[string]int)}
			seen[name] = t
			names = append(names, name)
		}
		t.total++
		if won {
			t.wins++
		}
		if t.promos[promotion] == 0 {
			t.order = append(t.order, promotion)
		}
		t.promos[promotion]++
	}
	for _, m := range matches {
		for _, w := range m.Winners {
			touch(w, m.Event.Promotion, true)
		}
		for _, l := range m.Losers {
			touch(l, m.Event.Promotion, false)
		}
	}

	graph := model.NetworkGraph{Nodes: []model.NetworkNode{}, Links: []model.NetworkLink{}}
	included := make(map[string]bool)
	for _, name := range names {
		if len(graph.Nodes) == opts.MaxNodes {
			break
		}
		t := seen[name]
		if t.total < opts.MinMatches {
			continue
		}
		group := t.order[0]
		for _, p := range t.order[1:] {
			if t.promos[p] > t.promos[group] {
				group = p
			}
		}
		included[name] = true
		graph.Nodes = append(graph.Nodes, model.NetworkNode{
			ID:           name,
			Name:         name,
			Group:        group,
			TotalMatches: t.total,
			Wins:         t.wins,
			Radius:       min(max(float64(t.total*2), minRadius), maxRadius),
		})
	}

	counts := make(map[pair]int)
	var order []pair
	for _, m := range matches {
		ps := m.Participants()
		for i := range ps {
			for j := i + 1; j < len(ps); j++ {
				a, b := ps[i], ps[j]
				if a == b || !included[a] || !included[b] {
					continue
				}
				if a > b {
					a, b = b, a
				}
				k := pair{a, b}
				if counts[k] == 0 {
					order = append(order, k)
				}
				counts[k]++
			}
		}
	}
	for _, k := range order {
		n := counts[k]
		graph.Links = append(graph.Links, model.NetworkLink{
			Source:     k.a,
			Target:     k.b,
			Value:      min(maxLinkValue, n*2),
			MatchCount: n,
		})
	}
	return graph
}
