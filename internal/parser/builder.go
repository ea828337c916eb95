package parser

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// SourceSuffix is the naming convention for per-wrestler files.
const SourceSuffix = "_matches.csv"

// minFields is index, date, (ignored), result.
const minFields = 4

// HomeWrestler derives the wrestler a source file is about:
// "CM_Punk_matches.csv" -> "CM Punk".
func HomeWrestler(source string) string {
	base := path.Base(strings.ReplaceAll(source, "\\", "/"))
	base = strings.TrimSuffix(base, SourceSuffix)
	return strings.ReplaceAll(base, "_", " ")
}

// MatchID is the composite identity: date, then sorted winners, then sorted losers.
// It is not globally unique; two identical results on one day collapse.
func MatchID(date string, winners, losers []string) string {
	w := append([]string(nil), winners...)
	l := append([]string(nil), losers...)
	sort.Strings(w)
	sort.Strings(l)
	return date + "-" + strings.Join(w, "-") + "-" + strings.Join(l, "-")
}

// Builder assembles MatchRecords from tokenized rows.
type Builder struct {
	dec *Decomposer
}

// NewBuilder returns a Builder using the given decomposer.
func NewBuilder(dec *Decomposer) *Builder {
	return &Builder{dec: dec}
}

// BuildLine tokenizes a raw CSV line and builds a record from it.
func (b *Builder) BuildLine(line, source string) (model.MatchRecord, error) {
	return b.Build(SplitLine(line), source)
}

// Build combines a row [index, DD.MM.YYYY, ignored, result, ...] with the source file
// it came from. Records with an empty side are rejected, never stored.
func (b *Builder) Build(values []string, source string) (model.MatchRecord, error) {
	if len(values) < minFields {
		return model.MatchRecord{}, fmt.Errorf("%w: got %d", ErrShortRow, len(values))
	}
	date, err := ParseDate(values[1])
	if err != nil {
		return model.MatchRecord{}, err
	}

	d, err := b.dec.Decompose(values[3], HomeWrestler(source))
	if err != nil {
		return model.MatchRecord{}, err
	}
	if len(d.Winners) == 0 || len(d.Losers) == 0 {
		return model.MatchRecord{}, ErrEmptySide
	}

	return model.MatchRecord{
		ID:                   MatchID(date, d.Winners, d.Losers),
		Date:                 date,
		Winners:              d.Winners,
		Losers:               d.Losers,
		MatchTime:            d.MatchTime,
		MatchDurationMinutes: d.DurationMinutes,
		Event:                d.Event,
		IsTagTeam:            d.IsTagTeam,
		IsPPV:                d.IsPPV,
		IsHouseShow:          d.IsHouseShow,
		Source:               path.Base(source),
	}, nil
}
