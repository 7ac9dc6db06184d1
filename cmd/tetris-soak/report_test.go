package main

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRecordsFinishedGames(t *testing.T) {
	g, err := tetris.NewGame(tetris.ClassicConfig(), tetris.WithRand(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)

	g.Submit(tetris.HardDrop)
	snap := g.Submit(tetris.Quit)

	report := &Report{}
	report.Record(snap, g.Stats())
	report.Record(snap, g.Stats())

	assert.Equal(t, 2, report.Games)
	assert.Equal(t, 2, report.Locked)
	assert.Equal(t, 1, report.MaxLevel)
	assert.Equal(t, 0, report.AvgScore())

	spawned := 0
	for _, n := range report.Spawned {
		spawned += n
	}
	assert.Equal(t, 4, spawned)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{Preset: "arcade", Games: 2, TotalScore: 500, GCPauseMetrics: true}
	report.Clears[4] = 3

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Preset:** arcade")
	assert.Contains(t, out, "**Avg Score:** 250")
	assert.Contains(t, out, "- 4 row(s): 3")
	assert.Contains(t, out, "- I: 0")
	assert.Contains(t, out, "## GC Pause Durations")
}
