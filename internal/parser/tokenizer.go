package parser

import "strings"

// SplitLine splits one CSV record on commas that are not inside double quotes.
// Quote characters only toggle the in-quotes state and are dropped from the output;
// doubled quotes are not unescaped. An unterminated quote swallows the rest of the
// line into the last field. Every field is whitespace-trimmed.
func SplitLine(line string) []string {
	fields := make([]string, 0, 6)
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(fields, strings.TrimSpace(cur.String()))
}
