package lexer

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind classifies lexer failures.
type ErrorKind int

const (
	_ ErrorKind = iota

	// MissingToken means the current line has no tokens left. It is the
	// normal end of a directive's argument list.
	MissingToken
	// InvalidHeader is a '[' without a closing ']'.
	InvalidHeader
	// InvalidNumber is a numeric-looking run that is not a number.
	InvalidNumber
)

var (
	ErrMissingToken  = errors.New("missing token")
	ErrInvalidHeader = errors.New("invalid header")
	ErrInvalidNumber = errors.New("invalid number")
)

// Error is a lexer failure located on one line.
type Error struct {
	Kind  ErrorKind
	Line  int
	Range Range
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %v", e.Line+1, e.Range.Start+1, e.Unwrap())
}

// Unwrap maps the kind onto its sentinel so errors.Is works.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case MissingToken:
		return ErrMissingToken
	case InvalidHeader:
		return ErrInvalidHeader
	case InvalidNumber:
		return ErrInvalidNumber
	default:
		return fmt.Errorf("lexer error kind %d", int(e.Kind))
	}
}

// IsMissing reports whether err signals the end of the current line.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingToken)
}
