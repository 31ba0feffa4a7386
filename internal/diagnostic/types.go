package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/k2d222/twwe-sub000/internal/lexer"
)

//go:generate go tool stringer -type=Level -linecomment -output=level_string.go

// Level is the severity of a Lint.
type Level int

const (
	Warning Level = iota // warning
	Error                // error
)

// Lint is a single diagnostic located on one line of a rule file.
type Lint struct {
	// Line is 0-based.
	Line  int         `yaml:"line"`
	Range lexer.Range `yaml:"range"`
	Level Level       `yaml:"level"`
	// Reason is the human-readable description.
	Reason string `yaml:"reason"`
	// Note is an optional hint, e.g. the set of accepted words.
	Note string `yaml:"note,omitempty"`
}

// String returns "line:col: level: reason (note)" with 1-based positions.
func (l Lint) String() string {
	msg := fmt.Sprintf("%d:%d: %s: %s", l.Line+1, l.Range.Start+1, l.Level, l.Reason)
	if l.Note != "" {
		msg += " (" + l.Note + ")"
	}

	return msg
}

// List holds lints in the order they were reported.
type List struct {
	Lints []Lint
}

// Add appends a lint.
func (d *List) Add(l Lint) {
	d.Lints = append(d.Lints, l)
}

// AddError adds an error-level lint.
func (d *List) AddError(line int, rng lexer.Range, reason, note string) {
	d.Add(Lint{Line: line, Range: rng, Level: Error, Reason: reason, Note: note})
}

// AddWarning adds a warning-level lint.
func (d *List) AddWarning(line int, rng lexer.Range, reason, note string) {
	d.Add(Lint{Line: line, Range: rng, Level: Warning, Reason: reason, Note: note})
}

// Errors returns the error-level lints.
func (d *List) Errors() []Lint {
	return d.filter(Error)
}

// Warnings returns the warning-level lints.
func (d *List) Warnings() []Lint {
	return d.filter(Warning)
}

func (d *List) filter(level Level) []Lint {
	var res []Lint

	for _, l := range d.Lints {
		if l.Level == level {
			res = append(res, l)
		}
	}

	return res
}

// HasErrors returns true if there are any error-level lints.
func (d *List) HasErrors() bool {
	for _, l := range d.Lints {
		if l.Level == Error {
			return true
		}
	}

	return false
}

// Len returns the number of lints.
func (d *List) Len() int {
	return len(d.Lints)
}

// Merge appends the lints of another list.
func (d *List) Merge(other List) {
	d.Lints = append(d.Lints, other.Lints...)
}

// Err returns a combined error from all error-level lints, or nil.
func (d *List) Err() error {
	errs := d.Errors()
	if len(errs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
