// Command wrestlectl loads per-wrestler match files and prints statistics offline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/wrestling-analytics/internal/app"
	"github.com/maxviazov/wrestling-analytics/internal/config"
	"github.com/maxviazov/wrestling-analytics/internal/loader"
	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/service"
	"github.com/maxviazov/wrestling-analytics/internal/stats"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

// cli holds state shared by every subcommand.
type cli struct {
	configPath string
	dataDir    string
	asJSON     bool
	verbose    bool
	criteria   service.CriteriaInput

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "wrestlectl",
		Short: "Wrestling match statistics from per-wrestler CSV files",
		Long: `wrestlectl parses per-wrestler match history files and prints aggregates.

Examples:
  wrestlectl load --data ./data
  wrestlectl wrestlers --promotion WWE --from 2024-01-01
  wrestlectl wrestler "CM Punk" --event-type ppv
  wrestlectl export --format yaml -o corpus.yaml`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return c.setup() },
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "config file (YAML); defaults and APP_* env apply without one")
	pf.StringVar(&c.dataDir, "data", "", "data directory, overrides sources.dir")
	pf.BoolVar(&c.asJSON, "json", false, "output as JSON")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log per-line parse problems")

	root.AddGroup(
		&cobra.Group{ID: "corpus", Title: "Corpus:"},
		&cobra.Group{ID: "stats", Title: "Statistics:"},
	)
	for _, cmd := range []*cobra.Command{c.loadCmd(), c.searchCmd(), c.exportCmd()} {
		cmd.GroupID = "corpus"
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		c.matchesCmd(), c.wrestlersCmd(), c.wrestlerCmd(), c.venuesCmd(),
		c.tagTeamsCmd(), c.heroCmd(), c.networkCmd(),
	} {
		cmd.GroupID = "stats"
		root.AddCommand(cmd)
	}
	return root
}

// setup loads configuration and a stderr logger. CLI output owns stdout.
func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataDir != "" {
		cfg.Sources.Kind = config.SourceFile
		cfg.Sources.Dir = c.dataDir
	}
	cfg.Logger.OutputTarget = "stderr"
	cfg.Logger.Format = "console"
	cfg.Logger.DebugFile = ""
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = "staging"
	}
	cfg.Logger.Level = "error"
	if c.verbose {
		cfg.Logger.Level = "debug"
	}
	log, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}
	c.cfg, c.log = cfg, log
	return nil
}

// addCriteriaFlags binds the filter flags shared by the statistics commands.
func (c *cli) addCriteriaFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&c.criteria.From, "from", "", "first date, YYYY-MM-DD")
	f.StringVar(&c.criteria.To, "to", "", "last date, YYYY-MM-DD")
	f.StringSliceVar(&c.criteria.Promotions, "promotion", nil, "promotion allow-list (repeatable)")
	f.StringSliceVar(&c.criteria.Wrestlers, "wrestler", nil, "wrestler allow-list (repeatable)")
	f.StringSliceVar(&c.criteria.Venues, "venue", nil, "venue allow-list (repeatable)")
	f.StringVar(&c.criteria.MatchType, "match-type", "", "all|singles|tag|multi")
	f.StringVar(&c.criteria.EventType, "event-type", "", "all|ppv|tv|house")
}

func (c *cli) load(ctx context.Context) (model.Corpus, error) {
	p, err := app.NewPipeline(c.cfg, c.log)
	if err != nil {
		return model.Corpus{}, err
	}
	corpus, err := p.Loader.Load(ctx)
	if errors.Is(err, loader.ErrNoRecords) {
		return corpus, fmt.Errorf("%w (checked %d sources under %s)", err, len(corpus.Sources), c.cfg.Sources.Dir)
	}
	return corpus, err
}

// filtered loads the corpus and applies the criteria flags.
func (c *cli) filtered(ctx context.Context) ([]model.MatchRecord, error) {
	criteria, err := service.ParseCriteria(c.criteria)
	if err != nil {
		return nil, criteriaError(err)
	}
	corpus, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Filter(corpus.Matches, criteria), nil
}

func criteriaError(err error) error {
	fes := service.FieldErrors(err)
	if len(fes) == 0 {
		return err
	}
	return fmt.Errorf("invalid --%s: %s", flagName(fes[0].Field), fes[0].Message)
}

func flagName(field string) string {
	switch field {
	case "match_type":
		return "match-type"
	case "event_type":
		return "event-type"
	default:
		return field
	}
}
