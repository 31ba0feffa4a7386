package automap

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/k2d222/twwe-sub000/internal/rules"
	"github.com/k2d222/twwe-sub000/internal/tile"
)

// NewSeed draws a fresh positive seed.
func NewSeed() uint32 {
	return rand.Uint32N(math.MaxInt32) + 1
}

// Apply rewrites grid in place following cfg and returns the seed it used.
// A zero seed is replaced with NewSeed. cfg must come from a successful
// parse; Apply panics on a nil config.
func Apply(grid tile.Grid, cfg *rules.Config, seed uint32) uint32 {
	if cfg == nil {
		panic("automap: Apply called with a nil config")
	}

	if seed == 0 {
		seed = NewSeed()
	}

	for r1, run := range cfg.Runs {
		applyRun(grid, run, seed, uint32(r1))
	}

	return seed
}

func applyRun(grid tile.Grid, run *rules.Run, seed, r1 uint32) {
	var src tile.Grid = grid
	if run.LayerCopy {
		src = tile.Snapshot(grid)
	}

	w, h := grid.Width(), grid.Height()

	for y := range h {
		for x := range w {
			for r2, ir := range run.IndexRules {
				if matches(src, ir, seed, r1, uint32(r2), x, y) {
					grid.SetTile(x, y, ir.Tile)
				}
			}
		}
	}
}

// matches reports whether every rule of ir holds at (x, y).
func matches(src tile.Grid, ir *rules.IndexRule, seed, r1, r2 uint32, x, y int) bool {
	for _, rule := range ir.Rules {
		switch r := rule.(type) {
		case *rules.PosRule:
			if !r.Matches(tile.At(src, x+r.Offset.X, y+r.Offset.Y)) {
				return false
			}
		case *rules.RandomRule:
			if !randomMatches(r, seed, r1, r2, x, y) {
				return false
			}
		default:
			panic(fmt.Sprintf("automap: unsupported rule type %T", rule))
		}
	}

	return true
}

func randomMatches(r *rules.RandomRule, seed, r1, r2 uint32, x, y int) bool {
	h := HashLocation(seed, r1, r2, uint32(x), uint32(y))
	return float64(h) < HashMax*r.Coef
}
