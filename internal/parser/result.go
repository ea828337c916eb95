package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

var (
	defeatsRe = regexp.MustCompile(`(?i)^([^@]+?)\s+defeats?\s+([^@(]+?)(?:\s*\(|\s*@|$)`)
	vsRe      = regexp.MustCompile(`(?i)^([^@]+?)\s+vs\.?\s+([^@(]+?)(?:\s*\(|\s*@|$)`)
	vsWordRe  = regexp.MustCompile(`(?i)\svs\.?\s`)
)

// parseResult works out the two sides of a match from its result text.
// "defeats" lines are authoritative. "vs" lines carry no winner: under the heuristic
// policy the group mentioning home wins, under the strict policy they are rejected.
// Text matching neither form falls back to home over an unknown opponent.
func parseResult(text, home, vsPolicy string) (winners, losers []string, err error) {
	switch {
	case strings.Contains(strings.ToLower(text), "defeats"):
		if m := defeatsRe.FindStringSubmatch(text); m != nil {
			winners = ParseNames(m[1])
			losers = ParseNames(m[2])
		}
	case vsWordRe.MatchString(text):
		if vsPolicy == VsStrict {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnresolvedResult, text)
		}
		if m := vsRe.FindStringSubmatch(text); m != nil {
			first, second := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if strings.Contains(strings.ToLower(first), strings.ToLower(home)) {
				winners, losers = ParseNames(first), ParseNames(second)
			} else {
				winners, losers = ParseNames(second), ParseNames(first)
			}
		}
	}

	if len(winners) == 0 && len(losers) == 0 {
		return []string{home}, []string{model.UnknownOpponent}, nil
	}
	return winners, losers, nil
}
