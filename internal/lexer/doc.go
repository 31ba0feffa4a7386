// Package lexer tokenizes automapper rule text.
//
// Rule files are line oriented. Blank lines and lines whose first
// non-space character is '#' are skipped. Each significant line yields a
// sequence of tokens:
//
//   - Header: "[name]"; the token text excludes the brackets
//   - Int:    "12", "-1"
//   - Float:  "0.5", "25%" (a trailing '%' divides by 100)
//   - Word:   any other run of non-space characters
//
// The lexer never looks past the current line on its own. Callers move
// between lines with NextLine and detect the end of a line through
// ErrMissingToken, which is how both the linter and the parser know a
// directive has no arguments left.
package lexer
