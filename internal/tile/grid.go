package tile

import "fmt"

// Grid is a fixed-size tile store owned by the caller.
type Grid interface {
	Width() int
	Height() int
	// Tile returns the tile at (x, y). Callers keep x and y in bounds.
	Tile(x, y int) Tile
	SetTile(x, y int, t Tile)
}

// Layer is a row-major in-memory Grid.
type Layer struct {
	width  int
	height int
	tiles  []Tile
}

var _ Grid = (*Layer)(nil)

// NewLayer creates a width×height layer filled with empty tiles.
func NewLayer(width, height int) *Layer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("tile: negative layer size %dx%d", width, height))
	}

	return &Layer{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// NewLayerFromIDs builds a layer from rows of tile ids; all rows must have
// the same length.
func NewLayerFromIDs(rows [][]int) (*Layer, error) {
	height := len(rows)
	width := 0

	if height > 0 {
		width = len(rows[0])
	}

	l := NewLayer(width, height)

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d tiles, expected %d", y, len(row), width)
		}

		for x, id := range row {
			l.SetTile(x, y, Tile{ID: id})
		}
	}

	return l, nil
}

func (l *Layer) Width() int  { return l.width }
func (l *Layer) Height() int { return l.height }

func (l *Layer) Tile(x, y int) Tile {
	return l.tiles[y*l.width+x]
}

func (l *Layer) SetTile(x, y int, t Tile) {
	l.tiles[y*l.width+x] = t
}

// InBounds reports whether (x, y) addresses a cell of g.
func InBounds(g Grid, x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width() && y < g.Height()
}

// At returns the tile at (x, y), or OutOfBounds when the position is
// outside of g.
func At(g Grid, x, y int) Tile {
	if !InBounds(g, x, y) {
		return OutOfBounds
	}

	return g.Tile(x, y)
}

// Snapshot copies the current contents of g into a new Layer.
func Snapshot(g Grid) *Layer {
	w, h := g.Width(), g.Height()
	l := NewLayer(w, h)

	for y := range h {
		for x := range w {
			l.tiles[y*w+x] = g.Tile(x, y)
		}
	}

	return l
}

// Equal reports whether a and b have the same size and contents.
func Equal(a, b Grid) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}

	for y := range a.Height() {
		for x := range a.Width() {
			if a.Tile(x, y) != b.Tile(x, y) {
				return false
			}
		}
	}

	return true
}
