// Package loader turns a set of per-wrestler sources into one deduplicated,
// date-sorted match corpus.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/parser"
	"github.com/maxviazov/wrestling-analytics/internal/source"
)

const (
	defaultConcurrency  = 4
	defaultFetchTimeout = 10 * time.Second
)

// ErrNoRecords means no source produced a single record. The caller decides what to show.
var ErrNoRecords = errors.New("no match records loaded")

// Options tunes a Loader. Zero values pick sane defaults.
type Options struct {
	// Sources lists source names in priority order. Empty means ask the fetcher to discover them.
	Sources      []string
	Concurrency  int
	FetchTimeout time.Duration
	Now          func() time.Time
}

// Loader fetches and parses sources. It keeps no state between Load calls.
type Loader struct {
	fetcher source.Fetcher
	builder *parser.Builder
	opts    Options
	log     zerolog.Logger
}

// New wires a loader. The fetcher and builder are required.
func New(fetcher source.Fetcher, builder *parser.Builder, opts Options, logger zerolog.Logger) (*Loader, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	if builder == nil {
		return nil, errors.New("builder is required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Sources = source.Unique(opts.Sources)
	l := logger.With().Str("module", "loader").Logger()
	return &Loader{fetcher: fetcher, builder: builder, opts: opts, log: l}, nil
}

// parsed is one source's outcome, kept until every fetch is done.
type parsed struct {
	report  model.SourceReport
	matches []model.MatchRecord
}

// Load runs one full load cycle. Sources are fetched in parallel, each under its own
// timeout; a failed source is reported and skipped. Merging happens afterwards in
// source order so the first-occurrence-wins dedup is independent of completion order.
// When nothing was loaded the returned corpus still carries the source reports.
func (l *Loader) Load(ctx context.Context) (model.Corpus, error) {
	names, err := l.sources(ctx)
	if err != nil {
		return model.Corpus{}, err
	}

	corpus := model.Corpus{ID: uuid.NewString(), LoadedAt: l.opts.Now().UTC()}
	l.log.Info().Str("corpus_id", corpus.ID).Int("sources", len(names)).Msg("load started")

	results := make([]parsed, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Concurrency)
	for i, name := range names {
		g.Go(func() error {
			results[i] = l.loadOne(gctx, name)
			return nil // per-source failures never cancel siblings
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return model.Corpus{}, fmt.Errorf("load cancelled: %w", err)
	}

	seen := make(map[string]struct{})
	for _, r := range results {
		corpus.Sources = append(corpus.Sources, r.report)
		for _, m := range r.matches {
			key := m.DedupKey()
			if _, dup := seen[key]; dup {
				corpus.Duplicates++
				continue
			}
			seen[key] = struct{}{}
			corpus.Matches = append(corpus.Matches, m)
		}
	}
	SortByDateDesc(corpus.Matches)

	if len(corpus.Matches) == 0 {
		l.log.Error().Str("corpus_id", corpus.ID).Int("sources", len(names)).Msg("load produced no records")
		return corpus, ErrNoRecords
	}
	l.log.Info().
		Str("corpus_id", corpus.ID).
		Int("matches", len(corpus.Matches)).
		Int("duplicates", corpus.Duplicates).
		Msg("load finished")
	return corpus, nil
}

func (l *Loader) sources(ctx context.Context) ([]string, error) {
	if len(l.opts.Sources) > 0 {
		return l.opts.Sources, nil
	}
	names, err := l.fetcher.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return source.Unique(names), nil
}

func (l *Loader) loadOne(ctx context.Context, name string) parsed {
	fctx, cancel := context.WithTimeout(ctx, l.opts.FetchTimeout)
	defer cancel()

	text, err := l.fetcher.Fetch(fctx, name)
	if err != nil {
		l.log.Warn().Err(err).Str("source", name).Msg("source skipped")
		return parsed{report: model.SourceReport{
			Name:     name,
			Wrestler: parser.HomeWrestler(name),
			Error:    err.Error(),
		}}
	}
	matches, report := l.ParseText(name, text)
	return parsed{report: report, matches: matches}
}

// ParseText parses one source's content: header line skipped, blank lines ignored,
// failing lines logged and counted but never fatal.
func (l *Loader) ParseText(name, text string) ([]model.MatchRecord, model.SourceReport) {
	report := model.SourceReport{Name: name, Wrestler: parser.HomeWrestler(name)}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var matches []model.MatchRecord
	header := true
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		report.Lines++
		m, err := l.builder.BuildLine(line, name)
		if err != nil {
			report.SkippedLines++
			l.log.Warn().Err(err).Str("source", name).Int("line", i+1).Msg("line skipped")
			continue
		}
		matches = append(matches, m)
	}
	report.Records = len(matches)
	return matches, report
}

// SortByDateDesc orders matches newest first. Equal dates keep their relative order.
func SortByDateDesc(matches []model.MatchRecord) {
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Date > matches[j].Date })
}
