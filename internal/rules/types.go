package rules

import (
	"github.com/k2d222/twwe-sub000/internal/tile"
)

// Config is one named, independently selectable rule set.
type Config struct {
	Name string
	Runs []*Run
}

// Run is one rewrite pass over the grid.
type Run struct {
	// LayerCopy makes position rules read from a snapshot taken at the
	// start of the run instead of the live grid.
	LayerCopy  bool
	IndexRules []*IndexRule
}

// IndexRule writes Tile into every cell where all Rules match.
type IndexRule struct {
	Tile  tile.Tile
	Rules []Rule
}

// Rule is a match predicate: *PosRule or *RandomRule.
type Rule interface {
	isRule()
}

// Point is a cell offset.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PosRule compares the cell at Offset against States. It matches when any
// state matches, or when none does if Invert is set.
type PosRule struct {
	Offset Point
	States []TileState
	Invert bool
}

// RandomRule matches on a deterministic pseudo-random fraction Coef of
// cells.
type RandomRule struct {
	Coef float64
}

func (*PosRule) isRule()    {}
func (*RandomRule) isRule() {}

// TileState is a tile-shape test: an id plus optional flag constraints.
// Flags outside Mask are not compared.
type TileState struct {
	ID   int
	Mask tile.Flags
	Want tile.Flags
}

// Constrain sets flag f to be required (on) or forbidden (!on).
func (s *TileState) Constrain(f tile.Flags, on bool) {
	s.Mask |= f
	if on {
		s.Want |= f
	} else {
		s.Want &^= f
	}
}

// Matches reports whether t has the state's id and agrees with every
// constrained flag.
func (s TileState) Matches(t tile.Tile) bool {
	return s.ID == t.ID && t.Flags&s.Mask == s.Want&s.Mask
}

// Matches evaluates the rule against the tile found at its offset.
func (r *PosRule) Matches(t tile.Tile) bool {
	for _, s := range r.States {
		if s.Matches(t) {
			return !r.Invert
		}
	}

	return r.Invert
}

// DefaultRule is appended to an IndexRule that has no explicit (0, 0)
// position rule: the cell itself must not be empty.
func DefaultRule() *PosRule {
	return &PosRule{
		Offset: Point{0, 0},
		States: []TileState{{ID: tile.Empty}},
		Invert: true,
	}
}

// Find returns the first config named name, or nil.
func Find(configs []*Config, name string) *Config {
	for _, c := range configs {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// Names returns the config names in file order.
func Names(configs []*Config) []string {
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		names = append(names, c.Name)
	}

	return names
}
