// Package gridfile reads and writes tile layers as YAML documents.
//
// The document lists tile ids row by row; orientation flags are stored
// sparsely because most cells have none:
//
//	tiles:
//	  - [1, 1, 0]
//	  - [0, 2, 0]
//	flags:
//	  - {x: 1, y: 1, flags: VFLIP|ROTATE}
//
// Grid files are how the command line tool feeds layers to the
// automapper; the editor's binary map format is handled elsewhere.
package gridfile
