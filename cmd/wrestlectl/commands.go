package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/maxviazov/wrestling-analytics/internal/app"
	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/source"
	"github.com/maxviazov/wrestling-analytics/internal/stats"
)

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load every source and report what was parsed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), corpus.Summary())
			}
			return renderSummary(cmd.OutOrStdout(), corpus.Summary())
		},
	}
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Find source files whose name contains TERM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.NewFetcher(c.cfg)
			if err != nil {
				return err
			}
			names, err := f.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sources: %w", err)
			}
			found := source.Search(names, args[0])
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), found)
			}
			for _, n := range found {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func (c *cli) matchesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List matches, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			matches = head(matches, limit)
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), matches)
			}
			return renderMatches(cmd.OutOrStdout(), matches)
		},
	}
	c.addCriteriaFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to print, 0 for all")
	return cmd
}

func (c *cli) wrestlersCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "wrestlers",
		Short: "Wrestler statistics, busiest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			list := head(stats.WrestlerStats(matches), limit)
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			return renderWrestlers(cmd.OutOrStdout(), list)
		},
	}
	c.addCriteriaFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to print, 0 for all")
	return cmd
}

func (c *cli) wrestlerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrestler NAME",
		Short: "One wrestler's record, opponents and partners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			ws, ok := stats.Wrestler(matches, args[0])
			if !ok {
				return fmt.Errorf("wrestler %q not found", args[0])
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), ws)
			}
			return renderWrestler(cmd.OutOrStdout(), ws)
		},
	}
	c.addCriteriaFlags(cmd)
	return cmd
}

func (c *cli) venuesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Venue statistics, busiest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			list := head(stats.VenueStats(matches), limit)
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			return renderVenues(cmd.OutOrStdout(), list)
		},
	}
	c.addCriteriaFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to print, 0 for all")
	return cmd
}

func (c *cli) tagTeamsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "tag-teams",
		Short: "Tag team statistics, busiest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			list := head(stats.TagTeamStats(matches), limit)
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			return renderTagTeams(cmd.OutOrStdout(), list)
		},
	}
	c.addCriteriaFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to print, 0 for all")
	return cmd
}

func (c *cli) heroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Headline totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			h := stats.HeroMetrics(matches)
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), h)
			}
			return renderHero(cmd.OutOrStdout(), h)
		},
	}
	c.addCriteriaFlags(cmd)
	return cmd
}

func (c *cli) networkCmd() *cobra.Command {
	var opts stats.NetworkOptions
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Wrestler graph as JSON (nodes and links)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := c.filtered(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), stats.Network(matches, opts))
		},
	}
	c.addCriteriaFlags(cmd)
	cmd.Flags().IntVar(&opts.MinMatches, "min-matches", stats.DefaultMinMatches, "minimum matches for a node")
	cmd.Flags().IntVar(&opts.MaxNodes, "max-nodes", stats.DefaultMaxNodes, "maximum number of nodes")
	return cmd
}

// export is the document written by the export command.
type export struct {
	Corpus    model.CorpusSummary   `json:"corpus" yaml:"corpus"`
	Hero      model.HeroMetrics     `json:"hero" yaml:"hero"`
	Matches   []model.MatchRecord   `json:"matches" yaml:"matches"`
	Wrestlers []model.WrestlerStats `json:"wrestlers" yaml:"wrestlers"`
	Venues    []model.VenueStats    `json:"venues" yaml:"venues"`
	TagTeams  []model.TagTeamStats  `json:"tagTeams" yaml:"tag_teams"`
	Options   model.FilterOptions   `json:"options" yaml:"options"`
}

func (c *cli) exportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full corpus and its aggregates as JSON or YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			if format != "json" && format != "yaml" {
				return fmt.Errorf("invalid --format %q: must be json or yaml", format)
			}
			corpus, err := c.load(cmd.Context())
			if err != nil {
				return err
			}
			doc := export{
				Corpus:    corpus.Summary(),
				Hero:      stats.HeroMetrics(corpus.Matches),
				Matches:   corpus.Matches,
				Wrestlers: stats.WrestlerStats(corpus.Matches),
				Venues:    stats.VenueStats(corpus.Matches),
				TagTeams:  stats.TagTeamStats(corpus.Matches),
				Options:   stats.Options(corpus.Matches),
			}

			if out == "" {
				return encodeExport(cmd.OutOrStdout(), format, doc)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := encodeExport(f, format, doc); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json|yaml")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, stdout when empty")
	return cmd
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func encodeExport(w io.Writer, format string, doc export) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeJSON(w, doc)
}
