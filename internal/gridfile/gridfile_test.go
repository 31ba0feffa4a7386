package gridfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k2d222/twwe-sub000/internal/tile"
)

func TestParse(t *testing.T) {
	yaml := `
tiles:
  - [1, 1, 0]
  - [0, 2, 0]
flags:
  - {x: 1, y: 1, flags: VFLIP|ROTATE}
  - {x: 0, y: 0, flags: 2}
`
	layer, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, 3, layer.Width())
	assert.Equal(t, 2, layer.Height())
	assert.Equal(t, tile.Tile{ID: 2, Flags: tile.VFlip | tile.Rotate}, layer.Tile(1, 1))
	assert.Equal(t, tile.Tile{ID: 1, Flags: tile.HFlip}, layer.Tile(0, 0))
	assert.Equal(t, tile.Tile{ID: 0}, layer.Tile(2, 1))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"ragged rows", "tiles:\n  - [1, 2]\n  - [1]\n"},
		{"flags out of bounds", "tiles:\n  - [1]\nflags:\n  - {x: 3, y: 0, flags: VFLIP}\n"},
		{"unknown flag", "tiles:\n  - [1]\nflags:\n  - {x: 0, y: 0, flags: SPIN}\n"},
		{"not yaml", "tiles: [[1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestWriteAndLoad(t *testing.T) {
	layer := tile.NewLayer(3, 2)
	layer.SetTile(0, 0, tile.Tile{ID: 4})
	layer.SetTile(2, 1, tile.Tile{ID: 7, Flags: tile.HFlip})

	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, WriteFile(layer, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, tile.Equal(layer, loaded))

	data, err := Marshal(layer)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flags: HFLIP")
}

func TestMarshal_OpaqueFlagRoundTrip(t *testing.T) {
	layer, err := Parse([]byte("tiles: [[1, 2]]\nflags:\n  - {x: 0, y: 0, flags: 5}\n  - {x: 1, y: 0, flags: 12}\n"))
	require.NoError(t, err)
	require.Equal(t, tile.Tile{ID: 1, Flags: tile.VFlip | 0x04}, layer.Tile(0, 0))

	data, err := Marshal(layer)
	require.NoError(t, err)
	assert.Contains(t, string(data), "VFLIP|0x04")

	back, err := Parse(data)
	require.NoError(t, err, string(data))
	assert.True(t, tile.Equal(layer, back))
	assert.Equal(t, tile.Tile{ID: 2, Flags: tile.Rotate | 0x04}, back.Tile(1, 0))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read grid file")
}
