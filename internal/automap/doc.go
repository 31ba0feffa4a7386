// Package automap applies a parsed automapper Config to a tile grid.
//
// Evaluation order is fixed, which is what makes the result reproducible
// across peers:
//
//	for each Run (run counter r1, from 0)
//	  for each cell, row by row
//	    for each IndexRule of the run (rule counter r2, from 0)
//	      if every Rule matches, write the rule's tile into the cell
//
// Rules of an IndexRule are evaluated in order and stop at the first
// mismatch. A later IndexRule may overwrite the write of an earlier one in
// the same run. A Run with layer copy reads neighbours from a snapshot
// taken when the run starts; without it, it reads the grid as it is being
// rewritten.
//
// Random rules use HashLocation(seed, r1, r2, x, y), a pure integer hash,
// never a stateful generator.
package automap
