package parser

import (
	"regexp"
	"strings"
)

// annotationRe matches short title markers such as "(c)", "(ic)" or "(c.)".
// Longer parenthesised text is kept, only its brackets are removed.
var annotationRe = regexp.MustCompile(`\s*\([^()&,]{0,4}\)`)

var parenReplacer = strings.NewReplacer("(", "", ")", "")

// ParseNames splits a participant fragment such as "A & B", "A, B" or "(A & B)"
// into trimmed names. Empty tokens are dropped, duplicates are kept.
func ParseNames(fragment string) []string {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	cleaned := annotationRe.ReplaceAllString(fragment, "")
	cleaned = parenReplacer.Replace(cleaned)

	tokens := strings.FieldsFunc(cleaned, func(r rune) bool { return r == '&' || r == ',' })
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			names = append(names, t)
		}
	}
	return names
}
