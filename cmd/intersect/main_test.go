package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/intersect/history"
	"github.com/osuushi/intersect/report"
)

func parse(t *testing.T, args ...string) *config {
	cfg := &config{}
	_, err := newApp(cfg).Parse(args)
	require.NoError(t, err)
	return cfg
}

func runWith(t *testing.T, cfg *config, stdin string) (string, *test.Hook, error) {
	var out bytes.Buffer
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	err := run(cfg, strings.NewReader(stdin), report.NewPrinter(&out, false), log)
	return out.String(), hook, err
}

func TestFlags(t *testing.T) {
	cfg := parse(t, "--epsilon", "1e-9", "--no-color", "--history-size", "3", "0", "0", "4", "4", "0", "4", "4", "0")
	assert.Equal(t, 1e-9, cfg.epsilon)
	assert.True(t, cfg.noColor)
	assert.Equal(t, 3, cfg.historySize)
	assert.Len(t, cfg.coordinates, 8)

	cfg = parse(t)
	assert.Equal(t, 0.0, cfg.epsilon)
	assert.Equal(t, 50, cfg.historySize)
}

func TestRun_Coordinates(t *testing.T) {
	cfg := parse(t, "0", "0", "4", "4", "0", "4", "4", "0")
	out, hook, err := runWith(t, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "The segments intersect at X: 2 Y: 2\n", out)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestRun_Stdin(t *testing.T) {
	cfg := parse(t, "--stdin")
	out, _, err := runWith(t, cfg, "0 0\n4 0\n2 0\n6 0\n\n0 0\n1 0\n2 0\n3 0\n")
	require.NoError(t, err)
	assert.Equal(t,
		"The segments are collinear and overlap from (2, 0) to (4, 0)\n"+
			"The segments are collinear but do not overlap\n",
		out)
}

func TestRun_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.svg")
	svg := `<svg><line x1="0" y1="0" x2="2" y2="0"/><line x1="2" y1="0" x2="2" y2="2"/></svg>`
	require.NoError(t, os.WriteFile(path, []byte(svg), 0o644))

	cfg := parse(t, "--svg", path)
	out, _, err := runWith(t, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "The segments intersect at X: 2 Y: 0\n", out)
}

func TestRun_InputErrors(t *testing.T) {
	_, _, err := runWith(t, parse(t), "")
	assert.EqualError(t, err, "no input: give 8 coordinates, --svg, or --stdin")

	_, _, err = runWith(t, parse(t, "--stdin", "0", "0", "4", "4", "0", "4", "4", "0"), "")
	assert.EqualError(t, err, "give only one of coordinates, --svg, or --stdin")

	_, _, err = runWith(t, parse(t, "0", "0", "4", "four", "0", "4", "4", "0"), "")
	assert.EqualError(t, err, `coordinates: y2: "four": value is not a number`)

	_, _, err = runWith(t, parse(t, "--stdin"), "\n")
	assert.EqualError(t, err, "no pairs on stdin")
}

func TestRun_HistoryAndPlot(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.yaml")
	plotPath := filepath.Join(dir, "plot.png")

	cfg := parse(t, "--history", historyPath, "--plot", plotPath, "0", "0", "4", "4", "0", "4", "4", "0")
	_, hook, err := runWith(t, cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "saved plot", hook.LastEntry().Message)
	assert.FileExists(t, plotPath)

	cfg = parse(t, "--history", historyPath, "--stdin")
	_, _, err = runWith(t, cfg, "0 0\n1 0\n0 1\n1 2\n")
	require.NoError(t, err)

	h, err := history.LoadFile(historyPath)
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())
	assert.Equal(t, "point", h.Entries[0].Kind)
	assert.Equal(t, "none", h.Entries[1].Kind)

	cfg = parse(t, "--history", historyPath, "--list")
	out, _, err := runWith(t, cfg, "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], h.Entries[0].Label)
	assert.Contains(t, lines[1], "-> no intersection")
}
