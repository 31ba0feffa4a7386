package automap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k2d222/twwe-sub000/internal/parser"
	"github.com/k2d222/twwe-sub000/internal/tile"
)

const twoConfigs = "[fill]\nIndex 9\nPos 0 0 EMPTY\n[clear]\nIndex 0\n"

func TestEngine_CachesParsedRules(t *testing.T) {
	e, err := NewEngine(2)
	require.NoError(t, err)

	first, err := e.Parse(twoConfigs)
	require.NoError(t, err)

	second, err := e.Parse(twoConfigs)
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Same(t, first[0], second[0])
	assert.Equal(t, 1, e.Len())
}

func TestEngine_EvictsOldest(t *testing.T) {
	e, err := NewEngine(1)
	require.NoError(t, err)

	a, err := e.Parse("[a]\n")
	require.NoError(t, err)

	_, err = e.Parse("[b]\n")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())

	again, err := e.Parse("[a]\n")
	require.NoError(t, err)
	assert.NotSame(t, a[0], again[0])
}

func TestEngine_InvalidRulesNotCached(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)

	_, err = e.Parse("Index 1\n")
	require.ErrorIs(t, err, parser.ErrInvalid)
	assert.Equal(t, 0, e.Len())
}

func TestEngine_Apply(t *testing.T) {
	e, err := NewEngine(DefaultCacheSize)
	require.NoError(t, err)

	grid := tile.NewLayer(2, 2)
	seed, err := e.Apply(grid, twoConfigs, "fill", 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), seed)
	assert.Equal(t, tile.Tile{ID: 9}, grid.Tile(1, 1))

	_, err = e.Apply(grid, twoConfigs, "missing", 5)
	require.ErrorIs(t, err, ErrConfigNotFound)

	_, err = e.Apply(grid, "[a]\nPos 0 0 EMPTY\n", "a", 5)
	require.ErrorIs(t, err, parser.ErrInvalid)
}
