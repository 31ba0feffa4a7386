package lexer

import (
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the variant of a Token.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	Word
	Header
	Int
	Float
)

// Range is a half-open byte range [Start, End) within a line.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Token is one lexical unit of a rule file.
type Token struct {
	// Line is 0-based.
	Line  int
	Range Range
	Kind  Kind
	// Text is the raw token text; for headers the brackets are excluded.
	Text  string
	Int   int
	Float float64
}

// Lexer tokenizes rule text one line at a time.
//
// A fresh Lexer is positioned before the first line: call NextLine to move
// onto the first significant line, then Next until ErrMissingToken.
type Lexer struct {
	lines []string
	line  int
	col   int
}

// New creates a Lexer over text.
func New(text string) *Lexer {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	return &Lexer{
		lines: strings.Split(text, "\n"),
		line:  -1,
	}
}

// Line returns the current 0-based line number.
func (l *Lexer) Line() int {
	return l.line
}

// Col returns the current byte offset within the line.
func (l *Lexer) Col() int {
	return l.col
}

// LineLen returns the length of the current line, or 0 if there is none.
func (l *Lexer) LineLen() int {
	if l.line < 0 || l.line >= len(l.lines) {
		return 0
	}

	return len(l.lines[l.line])
}

// NextLine moves to the next line that is neither blank nor a comment.
// It returns false once the input is exhausted.
func (l *Lexer) NextLine() bool {
	for l.line+1 < len(l.lines) {
		l.line++
		l.col = 0

		if !isSkippable(l.lines[l.line]) {
			return true
		}
	}

	l.line = len(l.lines)
	l.col = 0

	return false
}

// EOF reports whether no significant line follows the current one.
func (l *Lexer) EOF() bool {
	for i := l.line + 1; i < len(l.lines); i++ {
		if !isSkippable(l.lines[i]) {
			return false
		}
	}

	return true
}

// LineEmpty reports whether the current line has no tokens left.
func (l *Lexer) LineEmpty() bool {
	if l.line < 0 || l.line >= len(l.lines) {
		return true
	}

	return skipSpace(l.lines[l.line], l.col) == len(l.lines[l.line])
}

// Rest returns the range of whatever is left on the current line,
// excluding leading spaces.
func (l *Lexer) Rest() Range {
	n := l.LineLen()
	if n == 0 {
		return Range{l.col, l.col}
	}

	return Range{skipSpace(l.lines[l.line], l.col), n}
}

// SkipLine drops whatever is left on the current line.
func (l *Lexer) SkipLine() {
	l.col = l.LineLen()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	col := l.col
	tok, err := l.Next()
	l.col = col

	return tok, err
}

// Next consumes and returns the next token on the current line.
// At the end of the line it returns an *Error of kind MissingToken.
func (l *Lexer) Next() (Token, error) {
	if l.line < 0 || l.line >= len(l.lines) {
		return Token{}, &Error{Kind: MissingToken, Line: l.line, Range: Range{l.col, l.col}}
	}

	text := l.lines[l.line]
	start := skipSpace(text, l.col)

	if start == len(text) {
		l.col = start
		return Token{}, &Error{Kind: MissingToken, Line: l.line, Range: Range{start, start}}
	}

	if text[start] == '[' {
		return l.header(text, start)
	}

	end := start
	for end < len(text) && !isSpace(text[end]) {
		end++
	}

	l.col = end
	tok := Token{Line: l.line, Range: Range{start, end}, Text: text[start:end]}

	if !looksNumeric(tok.Text) {
		tok.Kind = Word
		return tok, nil
	}

	if err := parseNumber(&tok); err != nil {
		return Token{}, err
	}

	return tok, nil
}

func (l *Lexer) header(text string, start int) (Token, error) {
	closing := strings.IndexByte(text[start:], ']')
	if closing < 0 {
		l.col = len(text)
		return Token{}, &Error{Kind: InvalidHeader, Line: l.line, Range: Range{start, len(text)}}
	}

	end := start + closing + 1
	l.col = end

	return Token{
		Line:  l.line,
		Range: Range{start, end},
		Kind:  Header,
		Text:  text[start+1 : end-1],
	}, nil
}

// looksNumeric matches the prefix [+-]?[0-9.].
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}

	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	return s != "" && (isDigit(s[0]) || s[0] == '.')
}

func parseNumber(tok *Token) error {
	invalid := &Error{Kind: InvalidNumber, Line: tok.Line, Range: tok.Range}
	text := tok.Text

	if pct, ok := strings.CutSuffix(text, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil || !isPlainNumber(pct) {
			return invalid
		}

		tok.Kind = Float
		tok.Float = v / 100

		return nil
	}

	if !isPlainNumber(text) {
		return invalid
	}

	if strings.Contains(text, ".") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return invalid
		}

		tok.Kind = Float
		tok.Float = v

		return nil
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return invalid
	}

	tok.Kind = Int
	tok.Int = v

	return nil
}

// isPlainNumber accepts [+-]?[0-9.]+ only, so that strconv's extended
// syntax (exponents, underscores, hex, "Inf") is rejected.
func isPlainNumber(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for i := range len(s) {
		if !isDigit(s[i]) && s[i] != '.' {
			return false
		}
	}

	return true
}

func isSkippable(line string) bool {
	i := skipSpace(line, 0)
	return i == len(line) || line[i] == '#'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
