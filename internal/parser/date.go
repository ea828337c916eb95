package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var durationRe = regexp.MustCompile(`\((\d{1,2}:\d{2})\)`)

// ParseDate converts D.M.YYYY / DD.MM.YYYY into ISO YYYY-MM-DD.
// Anything that is not a real calendar date in that shape is rejected.
func ParseDate(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(day) == 0 || len(day) > 2 || len(month) == 0 || len(month) > 2 || len(year) != 4 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	iso := year + "-" + leftPad2(month) + "-" + leftPad2(day)
	if _, err := time.Parse(isoDate, iso); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return iso, nil
}

func leftPad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseDuration finds the first parenthesised M:SS or MM:SS token.
// It returns the raw token and the duration in fractional minutes; "0:00" and 0 when absent.
func ParseDuration(text string) (string, float64) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return "0:00", 0
	}
	return m[1], MatchTimeMinutes(m[1])
}

// MatchTimeMinutes converts an M:SS token into minutes. Malformed input yields 0.
func MatchTimeMinutes(token string) float64 {
	mins, secs, ok := strings.Cut(token, ":")
	if !ok {
		return 0
	}
	m, err := strconv.Atoi(mins)
	if err != nil {
		return 0
	}
	s, err := strconv.Atoi(secs)
	if err != nil {
		return 0
	}
	return float64(m) + float64(s)/60
}
