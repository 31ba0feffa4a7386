// Package tile provides the tile model the automapper reads and writes.
//
// A Tile is an integer id plus orientation flags. A Grid is any fixed-size
// two-dimensional tile store; Layer is the in-memory implementation used by
// the command line tool and tests, and Snapshot produces the read-only copy
// the automapper takes at the start of a layer-copy run.
package tile
