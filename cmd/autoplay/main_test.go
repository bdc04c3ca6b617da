package main

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minesweeper/pkg/core"
)

func TestParseDensities(t *testing.T) {
	ds, err := parseDensities("0.1, 0.2,")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, ds)

	ds, err = parseDensities("")
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, ds)

	_, err = parseDensities("1.5")
	assert.Error(t, err)
}

func TestBuildScenariosClampsDensity(t *testing.T) {
	presets := []core.Preset{{Name: "small", Size: core.Size{W: 5, H: 5}, Mines: 3}}
	got := buildScenarios(presets, []float64{0, 0.2, 0.9})
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].mines)
	assert.Equal(t, 5, got[1].mines)
	assert.Equal(t, 16, got[2].mines, "dense boards keep the safe zone free")
}

func TestRunScenario(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	res := runScenario(scenario{preset: "beginner", width: 9, height: 9, mines: 10}, 5, 1, log)
	require.NoError(t, res.err)
	assert.Equal(t, 5, res.games)
	assert.LessOrEqual(t, res.wins, 5)
	assert.Positive(t, res.moves)

	res = runScenario(scenario{width: 3, height: 3, mines: 4}, 2, 1, log)
	assert.Error(t, res.err)
	assert.Zero(t, res.games)
}
