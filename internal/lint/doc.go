// Package lint reports problems in automapper rule text for an editor.
//
// Unlike package parser, the linter is lenient: it never aborts, reports
// every problem it can find, and resumes on the next line after each one
// so a single typo yields a single diagnostic. Each diagnostic carries the
// line and byte range it refers to.
package lint
