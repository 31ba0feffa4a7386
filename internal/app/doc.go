// Package app wires the automapper packages into the operations of the
// command line tool: linting, parsing and applying rule files to grid
// files. It owns the logger; the packages it drives do not log.
package app
