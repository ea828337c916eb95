// Package stats folds match collections into aggregate views.
// Every function here is pure: it never mutates its input, keeps no state between
// calls and returns identical results for identical input.
package stats

import "sort"

// orderedSet keeps distinct strings in first-insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

// list returns a non-nil copy so JSON consumers always see an array.
func (s *orderedSet) list() []string {
	return append(make([]string, 0, len(s.items)), s.items...)
}

func (s *orderedSet) sorted() []string {
	out := s.list()
	sort.Strings(out)
	return out
}

// runningMean applies newAvg = (oldAvg*(n-1) + x) / n with n already incremented.
func runningMean(avg float64, n int, x float64) float64 {
	return (avg*float64(n-1) + x) / float64(n)
}

func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
