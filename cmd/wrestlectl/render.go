package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func table(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, color.CyanString(strings.Join(header, "\t")))
	return tw
}

func minutes(m float64) string {
	if m == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", m)
}

func renderSummary(w io.Writer, s model.CorpusSummary) error {
	tw := table(w, "SOURCE", "STATUS", "LINES", "RECORDS", "SKIPPED")
	for _, r := range s.Sources {
		status := color.GreenString("ok")
		if r.Failed() {
			status = color.RedString("failed: " + r.Error)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", r.Name, status, r.Lines, r.Records, r.SkippedLines)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s %d matches, %d duplicates dropped (corpus %s)\n",
		color.GreenString("✓"), s.Matches, s.Duplicates, s.ID)
	return err
}

func renderMatches(w io.Writer, matches []model.MatchRecord) error {
	tw := table(w, "DATE", "WINNERS", "LOSERS", "TIME", "EVENT", "VENUE")
	for _, m := range matches {
		event := m.Event.EventName
		if m.IsPPV {
			event = color.YellowString(event)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Date, strings.Join(m.Winners, " & "), strings.Join(m.Losers, " & "), m.MatchTime, event, m.Event.Venue)
	}
	return tw.Flush()
}

func renderWrestlers(w io.Writer, list []model.WrestlerStats) error {
	tw := table(w, "NAME", "MATCHES", "W", "L", "WIN%", "AVG MIN", "PPV")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\t%s\t%d\n",
			s.Name, s.TotalMatches, s.Wins, s.Losses, s.WinRate, minutes(s.AverageMatchTime), s.PPVMatches)
	}
	return tw.Flush()
}

func renderWrestler(w io.Writer, s model.WrestlerStats) error {
	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "%s\n  record:      %d-%d (%.1f%%) in %d matches\n  avg length:  %s min over %d timed\n  ppv:         %d\n  promotions:  %s\n  venues:      %s\n  opponents:   %s\n  partners:    %s\n",
		bold(s.Name), s.Wins, s.Losses, s.WinRate, s.TotalMatches,
		minutes(s.AverageMatchTime), s.TimedMatches, s.PPVMatches,
		strings.Join(s.Promotions, ", "), strings.Join(s.Venues, ", "),
		strings.Join(s.Opponents, ", "), strings.Join(s.TagPartners, ", "))
	return err
}

func renderVenues(w io.Writer, list []model.VenueStats) error {
	tw := table(w, "VENUE", "CITY", "COUNTRY", "MATCHES", "WRESTLERS", "AVG MIN")
	for _, v := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			v.Name, v.City, v.Country, v.TotalMatches, len(v.Wrestlers), minutes(v.AverageMatchTime))
	}
	return tw.Flush()
}

func renderTagTeams(w io.Writer, list []model.TagTeamStats) error {
	tw := table(w, "TEAM", "MATCHES", "W", "L", "WIN%", "AVG MIN")
	for _, t := range list {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\t%s\n",
			t.Name, t.TotalMatches, t.Wins, t.Losses, t.WinRate, minutes(t.AverageMatchTime))
	}
	return tw.Flush()
}

func renderHero(w io.Writer, h model.HeroMetrics) error {
	_, err := fmt.Fprintf(w, "%s\n  matches:     %d\n  wrestlers:   %d\n  venues:      %d\n  promotions:  %d\n  avg length:  %s min\n",
		color.CyanString("Overview"), h.TotalMatches, h.TotalWrestlers, h.TotalVenues, h.TotalPromotions, minutes(h.AverageMatchTime))
	return err
}
