package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minesweeper/pkg/core"
)

func TestParametersReflectBoard(t *testing.T) {
	g, err := NewGame(9, 9, 10)
	require.NoError(t, err)

	snap := g.Parameters()
	p, ok := snap.Lookup("mines")
	require.True(t, ok)
	assert.Equal(t, "10", p.Value)
	p, ok = snap.Lookup("question")
	require.True(t, ok)
	assert.Equal(t, core.ParamTypeBool, p.Type)
	assert.Equal(t, "false", p.Value)

	var mines core.ParameterControl
	for _, c := range g.ParameterControls() {
		if c.Key == "mines" {
			mines = c
		}
	}
	assert.Equal(t, 71, mines.Max)
}

func TestSetIntParameterBounds(t *testing.T) {
	g, err := NewGame(9, 9, 10)
	require.NoError(t, err)

	assert.False(t, g.SetIntParameter("w", MinSettingsDimension-1))
	assert.False(t, g.SetIntParameter("h", MaxSettingsDimension+1))
	assert.False(t, g.SetIntParameter("mines", 0))
	assert.False(t, g.SetIntParameter("mines", 72))
	assert.False(t, g.SetIntParameter("question", 2))
	assert.False(t, g.SetIntParameter("speed", 1))
	assert.Equal(t, 9, g.Board().Width())

	require.True(t, g.SetIntParameter("mines", 71))
	assert.Equal(t, 71, g.Board().Mines())
}

func TestShrinkingBoardClampsMines(t *testing.T) {
	g, err := NewGame(9, 9, 70)
	require.NoError(t, err)

	require.True(t, g.SetIntParameter("w", 5))
	assert.Equal(t, 5, g.Board().Width())
	assert.Equal(t, 35, g.Board().Mines())
	assert.Equal(t, Empty, g.State())
}

func TestSetIntParameterResetsRound(t *testing.T) {
	g, err := NewGame(9, 9, 10)
	require.NoError(t, err)
	g.Reveal(4, 4)
	round := g.Round()

	require.True(t, g.SetIntParameter("h", 12))
	assert.Equal(t, Empty, g.State())
	assert.NotEqual(t, round, g.Round())

	require.True(t, g.SetIntParameter("question", 1))
	assert.Equal(t, ModifyQuestion, g.ModifyMode())
	assert.Equal(t, "true", g.Parameters().Groups[1].Params[0].Value)
	assert.Equal(t, 1, g.Events().Len(), "toggling markers keeps the round")
}
