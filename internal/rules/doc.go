// Package rules defines the automapper rule set produced by the parser.
//
// A rule file holds one or more named Configs. Each Config is a sequence
// of Runs, and each Run an ordered list of IndexRules. An IndexRule names
// the tile to write and the Rules that must all match for the write to
// happen:
//
//	[Grass]                  Config "Grass"
//	Index 1                  IndexRule writing tile 1 ...
//	Pos 0 -1 EMPTY           ... if the cell above is empty (PosRule)
//	Random 4                 ... on roughly one cell in four (RandomRule)
//	NewRun                   a second Run sees the result of the first
//
// Rule sets are immutable once parsed and may be applied any number of
// times.
package rules
