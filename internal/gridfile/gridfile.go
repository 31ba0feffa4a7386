package gridfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/k2d222/twwe-sub000/internal/tile"
)

// Document is the YAML form of a tile layer.
type Document struct {
	Tiles [][]int     `yaml:"tiles,flow"`
	Flags []FlagEntry `yaml:"flags,omitempty"`
}

// FlagEntry holds the flags of one cell.
type FlagEntry struct {
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	Flags tile.Flags `yaml:"flags"`
}

// LoadFile reads and parses a grid file.
func LoadFile(path string) (*tile.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file %s: %w", path, err)
	}

	layer, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}

	return layer, nil
}

// Parse decodes a YAML grid document into a layer.
func Parse(data []byte) (*tile.Layer, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse grid YAML: %w", err)
	}

	layer, err := tile.NewLayerFromIDs(doc.Tiles)
	if err != nil {
		return nil, err
	}

	for _, f := range doc.Flags {
		if !tile.InBounds(layer, f.X, f.Y) {
			return nil, fmt.Errorf("flags for (%d, %d) outside of %dx%d grid", f.X, f.Y, layer.Width(), layer.Height())
		}

		t := layer.Tile(f.X, f.Y)
		t.Flags = f.Flags
		layer.SetTile(f.X, f.Y, t)
	}

	return layer, nil
}

// FromGrid builds the document of g.
func FromGrid(g tile.Grid) Document {
	doc := Document{Tiles: make([][]int, g.Height())}

	for y := range g.Height() {
		row := make([]int, g.Width())

		for x := range g.Width() {
			t := g.Tile(x, y)
			row[x] = t.ID

			if t.Flags != tile.NoFlags {
				doc.Flags = append(doc.Flags, FlagEntry{X: x, Y: y, Flags: t.Flags})
			}
		}

		doc.Tiles[y] = row
	}

	return doc
}

// Marshal serializes g to YAML.
func Marshal(g tile.Grid) ([]byte, error) {
	return yaml.Marshal(FromGrid(g))
}

// WriteFile writes g to path.
func WriteFile(g tile.Grid, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write grid file %s: %w", path, err)
	}

	return nil
}
