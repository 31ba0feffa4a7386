package tile

import (
	"fmt"
	"strings"
)

// Flags is the orientation bitset stored next to a tile id.
type Flags uint8

const (
	VFlip Flags = 1 << 0
	HFlip Flags = 1 << 1
	// bit 2 is the map format's opaque flag; the automapper never touches it.
	Rotate Flags = 1 << 3

	NoFlags Flags = 0
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String returns the flags as a "|"-joined list, e.g. "VFLIP|ROTATE".
func (f Flags) String() string {
	if f == NoFlags {
		return "NONE"
	}

	var parts []string
	if f.Has(VFlip) {
		parts = append(parts, "VFLIP")
	}

	if f.Has(HFlip) {
		parts = append(parts, "HFLIP")
	}

	if f.Has(Rotate) {
		parts = append(parts, "ROTATE")
	}

	if rest := f &^ (VFlip | HFlip | Rotate); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02X", uint8(rest)))
	}

	return strings.Join(parts, "|")
}

// Tile is a single grid cell.
type Tile struct {
	ID    int   `yaml:"id"`
	Flags Flags `yaml:"flags,omitempty"`
}

// OutOfBounds is returned for reads outside of a grid. Its id never equals
// a real tile id.
var OutOfBounds = Tile{ID: -1}

// Empty is the tile id of an unpainted cell.
const Empty = 0

// IsEmpty reports whether the tile is an unpainted cell.
func (t Tile) IsEmpty() bool {
	return t.ID == Empty
}
