package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

const punk = "index,date,event,result,location\n" +
	"1,15.06.2024,,\"CM Punk defeats Gunther (20:00) WWE Clash at the Castle - Premium Live Event @ Wembley in London, England, UK\"\n" +
	"2,01.03.2024,,\"CM Punk & Seth Rollins defeats Gunther & Ludwig Kaiser (12:30) WWE Raw - TV Show @ Arena in Town, USA\"\n" +
	"3,garbage\n"

const gunther = "index,date,event,result\n" +
	"1,15.06.2024,,\"CM Punk defeats Gunther (20:00) WWE Clash at the Castle - Premium Live Event @ Wembley in London, England, UK\"\n" +
	"2,10.01.2024,,\"Gunther defeats Kofi Kingston (15:00) WWE Raw - TV Show @ Arena in Town, USA\"\n"

func dataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CM_Punk_matches.csv"), []byte(punk), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Gunther_matches.csv"), []byte(gunther), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Chdir(t.TempDir()) // no stray .env
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoad(t *testing.T) {
	out, err := run(t, "load", "--data", dataDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "CM_Punk_matches.csv")
	assert.Contains(t, out, "3 matches, 1 duplicates dropped")
}

func TestLoad_JSON(t *testing.T) {
	out, err := run(t, "load", "--json", "--data", dataDir(t))
	require.NoError(t, err)
	var sum model.CorpusSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 3, sum.Matches)
	require.Len(t, sum.Sources, 2)
	assert.Equal(t, 1, sum.Sources[0].SkippedLines)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := run(t, "load", "--data", t.TempDir())
	assert.ErrorContains(t, err, "no match records loaded")
}

func TestWrestlers(t *testing.T) {
	out, err := run(t, "wrestlers", "--data", dataDir(t))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[1], "Gunther"), "busiest first: %q", lines[1])
}

func TestWrestler_Filtered(t *testing.T) {
	out, err := run(t, "wrestler", "CM Punk", "--json", "--event-type", "ppv", "--data", dataDir(t))
	require.NoError(t, err)
	var ws model.WrestlerStats
	require.NoError(t, json.Unmarshal([]byte(out), &ws))
	assert.Equal(t, 1, ws.TotalMatches)
	assert.Equal(t, []string{"Wembley"}, ws.Venues)
}

func TestInvalidCriteria(t *testing.T) {
	_, err := run(t, "matches", "--match-type", "ladder", "--data", dataDir(t))
	assert.ErrorContains(t, err, "invalid --match-type")
}

func TestTagTeamsAndHero(t *testing.T) {
	dir := dataDir(t)
	out, err := run(t, "tag-teams", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "CM Punk & Seth Rollins")

	out, err = run(t, "hero", "--json", "--data", dir)
	require.NoError(t, err)
	var h model.HeroMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &h))
	assert.Equal(t, 3, h.TotalMatches)
	assert.InDelta(t, (20+12.5+15)/3.0, h.AverageMatchTime, 1e-9)
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "cm punk", "--data", dataDir(t))
	require.NoError(t, err)
	assert.Equal(t, "CM_Punk_matches.csv\n", out)
}

func TestExport_YAML(t *testing.T) {
	dir := dataDir(t)
	target := filepath.Join(t.TempDir(), "corpus.yaml")
	_, err := run(t, "export", "--format", "yaml", "-o", target, "--data", dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	assert.Len(t, doc["matches"], 3)
	assert.Contains(t, doc, "tag_teams")

	summary, ok := doc["corpus"].(map[string]any)
	require.True(t, ok, "corpus section missing")
	assert.Contains(t, summary, "loaded_at")
	assert.NotContains(t, summary, "loadedat")
	assert.Equal(t, 3, summary["matches"])

	_, err = run(t, "export", "--format", "xml", "--data", dir)
	assert.ErrorContains(t, err, "invalid --format")
}
