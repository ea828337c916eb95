package model

import "time"

// SourceReport summarizes what happened to one source during a load cycle.
type SourceReport struct {
	Name         string `json:"name" yaml:"name"`
	Wrestler     string `json:"wrestler" yaml:"wrestler"`
	Lines        int    `json:"lines" yaml:"lines"`
	Records      int    `json:"records" yaml:"records"`
	SkippedLines int    `json:"skippedLines" yaml:"skipped_lines"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the source could not be fetched.
func (r SourceReport) Failed() bool { return r.Error != "" }

// Corpus is the result of one load cycle: a deduplicated, date-descending match collection.
// A refresh builds a new Corpus instead of touching the previous one.
type Corpus struct {
	ID         string         `json:"id" yaml:"id"`
	LoadedAt   time.Time      `json:"loadedAt" yaml:"loaded_at"`
	Matches    []MatchRecord  `json:"matches" yaml:"matches"`
	Sources    []SourceReport `json:"sources" yaml:"sources"`
	Duplicates int            `json:"duplicates" yaml:"duplicates"`
}

// CorpusSummary is a Corpus without its matches, for cheap status responses.
type CorpusSummary struct {
	ID         string         `json:"id" yaml:"id"`
	LoadedAt   time.Time      `json:"loadedAt" yaml:"loaded_at"`
	Matches    int            `json:"matches" yaml:"matches"`
	Duplicates int            `json:"duplicates" yaml:"duplicates"`
	Sources    []SourceReport `json:"sources" yaml:"sources"`
}

// Summary drops the match payload.
func (c Corpus) Summary() CorpusSummary {
	return CorpusSummary{
		ID:         c.ID,
		LoadedAt:   c.LoadedAt,
		Matches:    len(c.Matches),
		Duplicates: c.Duplicates,
		Sources:    c.Sources,
	}
}
