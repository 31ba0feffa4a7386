// Package diagnostic provides the line/column ranged messages the linter
// reports to an editor.
//
// Lints are values: producing one never aborts the caller. A List keeps
// them in the order they were found and can fold its errors into a
// single Go error for command line use.
package diagnostic
