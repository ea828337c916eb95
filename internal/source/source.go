// Package source fetches raw per-wrestler CSV text. The loader only needs
// "name in, text out"; where the text lives is decided here.
package source

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/maxviazov/wrestling-analytics/internal/parser"
)

// DefaultPattern matches per-wrestler files anywhere below a data root.
const DefaultPattern = "**/*" + parser.SourceSuffix

var (
	// ErrNotFound is returned when a named source does not exist.
	ErrNotFound = errors.New("source not found")
	// ErrDiscoveryUnsupported is returned by fetchers that cannot enumerate their sources.
	ErrDiscoveryUnsupported = errors.New("source discovery not supported")
	// ErrInvalidName is returned for names that would resolve outside the fetcher's root.
	ErrInvalidName = errors.New("invalid source name")
)

// Fetcher retrieves the text content of a named source.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
	List(ctx context.Context) ([]string, error)
}

var spaceRun = regexp.MustCompile(`\s+`)

// Search returns the names whose file name contains term, with whitespace in term
// treated as "_" ("cm punk" finds "CM_Punk_matches.csv"). Matching is case-insensitive
// and the result is sorted.
func Search(names []string, term string) []string {
	needle := strings.ToLower(spaceRun.ReplaceAllString(strings.TrimSpace(term), "_"))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), needle) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// Unique drops repeated names, keeping the first position of each.
func Unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
