// Package app assembles the pipeline from configuration. The constructors are shared by
// the HTTP server (through fx) and the CLI (called directly).
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/wrestling-analytics/internal/config"
	"github.com/maxviazov/wrestling-analytics/internal/loader"
	"github.com/maxviazov/wrestling-analytics/internal/logger"
	"github.com/maxviazov/wrestling-analytics/internal/parser"
	"github.com/maxviazov/wrestling-analytics/internal/source"
)

func NewLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(&cfg.Logger)
}

// NewFetcher picks the file-system or HTTP fetcher from sources.kind.
func NewFetcher(cfg *config.Config) (source.Fetcher, error) {
	s := cfg.Sources
	switch s.Kind {
	case config.SourceHTTP:
		f, err := source.NewHTTPFetcher(s.BaseURL, s.Manifest, s.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("http fetcher: %w", err)
		}
		return f, nil
	default:
		f, err := source.NewFileFetcher(s.Dir, s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("file fetcher: %w", err)
		}
		return f, nil
	}
}

func NewBuilder(cfg *config.Config) (*parser.Builder, error) {
	dec, err := parser.NewDecomposer(cfg.Classifier)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	return parser.NewBuilder(dec), nil
}

func NewLoader(cfg *config.Config, fetcher source.Fetcher, builder *parser.Builder, log zerolog.Logger) (*loader.Loader, error) {
	return loader.New(fetcher, builder, loader.Options{
		Sources:      cfg.Sources.Files,
		Concurrency:  cfg.Sources.Concurrency,
		FetchTimeout: cfg.Sources.FetchTimeout,
	}, log)
}

// Pipeline is the fetch-parse-load chain without any server around it.
type Pipeline struct {
	Fetcher source.Fetcher
	Loader  *loader.Loader
}

// NewPipeline builds the chain in one call for the CLI.
func NewPipeline(cfg *config.Config, log zerolog.Logger) (*Pipeline, error) {
	f, err := NewFetcher(cfg)
	if err != nil {
		return nil, err
	}
	b, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	l, err := NewLoader(cfg, f, b, log)
	if err != nil {
		return nil, err
	}
	return &Pipeline{Fetcher: f, Loader: l}, nil
}
