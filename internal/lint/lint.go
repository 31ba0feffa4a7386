package lint

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/k2d222/twwe-sub000/internal/diagnostic"
	"github.com/k2d222/twwe-sub000/internal/lexer"
)

// Directive and argument words of the rule grammar.
const (
	wordNoLayerCopy   = "NoLayerCopy"
	wordIndex         = "Index"
	wordNewRun        = "NewRun"
	wordPos           = "Pos"
	wordRandom        = "Random"
	wordNoDefaultRule = "NoDefaultRule"

	wordEmpty    = "EMPTY"
	wordFull     = "FULL"
	wordIndexSel = "INDEX"
	wordNotIndex = "NOTINDEX"
	wordOr       = "OR"

	wordXFlip  = "XFLIP"
	wordYFlip  = "YFLIP"
	wordRotate = "ROTATE"
	wordNone   = "NONE"
)

var (
	// runStart is accepted before the first Index of a run.
	runStart = []string{wordNoLayerCopy, wordIndex}
	// inRun is accepted once the run has an Index.
	inRun = []string{wordNoLayerCopy, wordIndex, wordNewRun, wordPos, wordRandom, wordNoDefaultRule}

	indexFlagWords = []string{wordXFlip, wordYFlip, wordRotate}
	selectorWords  = []string{wordEmpty, wordFull, wordIndexSel, wordNotIndex}
)

// Lint checks a rule file and reports every problem it finds. It never
// stops at the first error: after a problem it resumes on the next line.
func Lint(text string) diagnostic.List {
	l := &linter{
		lex:   lexer.New(text),
		names: map[string]int{},
	}

	for l.lex.NextLine() {
		l.lintLine()
	}

	l.endBlock()

	return l.diags
}

type linter struct {
	lex   *lexer.Lexer
	diags diagnostic.List

	// names maps config names to the line that first declared them.
	names map[string]int

	inBlock   bool
	orphan    bool
	header    lexer.Token
	hasIndex  bool
	runIndex  bool
	noCopy    bool
	noDefault bool
}

func (l *linter) errorf(line int, rng lexer.Range, note, format string, args ...any) {
	l.diags.AddError(line, rng, fmt.Sprintf(format, args...), note)
}

func (l *linter) warnf(line int, rng lexer.Range, note, format string, args ...any) {
	l.diags.AddWarning(line, rng, fmt.Sprintf(format, args...), note)
}

func (l *linter) lintLine() {
	tok, err := l.lex.Next()
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) && lexErr.Kind == lexer.InvalidHeader {
			l.errorf(lexErr.Line, lexErr.Range, "expected ']'", "unterminated header")
			l.beginBlock(lexer.Token{Line: lexErr.Line, Range: lexErr.Range, Kind: lexer.Header})

			return
		}

		l.lexError(err, "expected header or directive")

		return
	}

	switch tok.Kind {
	case lexer.Header:
		l.beginBlock(tok)
		l.checkHeader(tok)
		l.expectEOL()
	case lexer.Word:
		if !l.inBlock {
			l.errorf(tok.Line, tok.Range, "rule files start with a [name] header", "expected header")
			l.inBlock = true
			l.orphan = true
		}

		l.lintDirective(tok)
	default:
		l.errorf(tok.Line, tok.Range, "", "expected header or directive, got %s", strings.ToLower(tok.Kind.String()))
	}
}

func (l *linter) beginBlock(header lexer.Token) {
	l.endBlock()

	l.inBlock = true
	l.orphan = false
	l.header = header
	l.hasIndex = false
	l.runIndex = false
	l.noCopy = false
	l.noDefault = false
}

func (l *linter) endBlock() {
	if l.inBlock && !l.orphan && !l.hasIndex {
		l.warnf(l.header.Line, l.header.Range, "add an Index directive", "config is empty")
	}

	l.inBlock = false
}

func (l *linter) checkHeader(tok lexer.Token) {
	name := strings.TrimSpace(tok.Text)
	if name == "" {
		l.warnf(tok.Line, tok.Range, "", "config name is empty")
		return
	}

	if first, ok := l.names[name]; ok {
		l.warnf(tok.Line, tok.Range, fmt.Sprintf("first declared on line %d", first+1),
			"duplicate config name %q", name)

		return
	}

	l.names[name] = tok.Line
}

func (l *linter) lintDirective(tok lexer.Token) {
	allowed := runStart
	if l.runIndex {
		allowed = inRun
	}

	if !slices.Contains(allowed, tok.Text) {
		l.errorf(tok.Line, tok.Range, "expected one of: "+strings.Join(allowed, ", "),
			"unexpected %q", tok.Text)

		return
	}

	switch tok.Text {
	case wordNoLayerCopy:
		if l.noCopy {
			l.warnf(tok.Line, tok.Range, "", "duplicate %s", wordNoLayerCopy)
		}

		l.noCopy = true
	case wordIndex:
		if !l.lintIndex() {
			return
		}
	case wordNewRun:
		l.runIndex = false
		l.noCopy = false
	case wordPos:
		if !l.lintPos() {
			return
		}
	case wordRandom:
		if !l.lintRandom() {
			return
		}
	case wordNoDefaultRule:
		if l.noDefault {
			l.warnf(tok.Line, tok.Range, "", "duplicate %s", wordNoDefaultRule)
		}

		l.noDefault = true
	}

	l.expectEOL()
}

// Index <int> [XFLIP|YFLIP|ROTATE]*
func (l *linter) lintIndex() bool {
	// The run has an Index even if this one is malformed, so that the
	// following Pos lines are not reported as well.
	l.hasIndex = true
	l.runIndex = true
	l.noDefault = false

	if _, ok := l.expectInt("tile id"); !ok {
		return false
	}

	seen := map[string]bool{}

	for {
		tok, ok := l.acceptWord(indexFlagWords...)
		if !ok {
			return true
		}

		if seen[tok.Text] {
			l.warnf(tok.Line, tok.Range, "", "duplicate flag %s", tok.Text)
		}

		seen[tok.Text] = true
	}
}

// Pos <int> <int> (EMPTY|FULL | (INDEX|NOTINDEX) <int> [flags]* (OR <int> [flags]*)*)
func (l *linter) lintPos() bool {
	if _, ok := l.expectInt("x offset"); !ok {
		return false
	}

	if _, ok := l.expectInt("y offset"); !ok {
		return false
	}

	note := "expected one of: " + strings.Join(selectorWords, ", ")

	sel, err := l.lex.Next()
	if err != nil {
		l.lexError(err, "expected selector")
		return false
	}

	if sel.Kind != lexer.Word || !slices.Contains(selectorWords, sel.Text) {
		l.errorf(sel.Line, sel.Range, note, "unknown selector %q", sel.Text)
		return false
	}

	if sel.Text == wordEmpty || sel.Text == wordFull {
		return true
	}

	for {
		if _, ok := l.expectInt("tile id"); !ok {
			return false
		}

		if !l.lintStateFlags() {
			return true
		}
	}
}

// lintStateFlags checks the flags of one Pos state and reports whether an
// OR follows.
func (l *linter) lintStateFlags() bool {
	seen := map[string]bool{}
	none := false

	for {
		tok, ok := l.acceptWord(wordXFlip, wordYFlip, wordRotate, wordNone, wordOr)
		if !ok {
			return false
		}

		switch tok.Text {
		case wordOr:
			return true
		case wordNone:
			if none {
				l.warnf(tok.Line, tok.Range, "", "duplicate flag %s", wordNone)
			} else if len(seen) > 0 {
				l.warnf(tok.Line, tok.Range, "NONE clears the flags set before it", "%s conflicts with earlier flags", wordNone)
			}

			none = true
		default:
			if seen[tok.Text] {
				l.warnf(tok.Line, tok.Range, "", "duplicate flag %s", tok.Text)
			} else if none {
				l.warnf(tok.Line, tok.Range, "", "%s conflicts with %s", tok.Text, wordNone)
			}

			seen[tok.Text] = true
		}
	}
}

// Random <int|float|percent>
func (l *linter) lintRandom() bool {
	tok, err := l.lex.Next()
	if err != nil {
		l.lexError(err, "expected probability")
		return false
	}

	switch tok.Kind {
	case lexer.Int:
		if tok.Int <= 0 {
			l.errorf(tok.Line, tok.Range, "use n for a 1/n chance", "random value must be positive")
			return false
		}
	case lexer.Float:
		if tok.Float <= 0 {
			l.errorf(tok.Line, tok.Range, "", "random value must be positive")
			return false
		}

		if tok.Float > 1 {
			l.warnf(tok.Line, tok.Range, "", "probability above 100%% always matches")
		}
	default:
		l.errorf(tok.Line, tok.Range, "e.g. 4, 0.25 or 25%", "expected probability, got %q", tok.Text)
		return false
	}

	return true
}

func (l *linter) expectInt(what string) (lexer.Token, bool) {
	tok, err := l.lex.Next()
	if err != nil {
		l.lexError(err, "expected "+what)
		return lexer.Token{}, false
	}

	if tok.Kind != lexer.Int {
		l.errorf(tok.Line, tok.Range, "", "expected %s, got %q", what, tok.Text)
		return lexer.Token{}, false
	}

	return tok, true
}

// acceptWord consumes the next token if it is one of words.
func (l *linter) acceptWord(words ...string) (lexer.Token, bool) {
	tok, err := l.lex.Peek()
	if err != nil || tok.Kind != lexer.Word || !slices.Contains(words, tok.Text) {
		return lexer.Token{}, false
	}

	_, _ = l.lex.Next()

	return tok, true
}

func (l *linter) expectEOL() {
	if l.lex.LineEmpty() {
		return
	}

	l.warnf(l.lex.Line(), l.lex.Rest(), "", "expected end of line")
	l.lex.SkipLine()
}

func (l *linter) lexError(err error, msg string) {
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		l.errorf(l.lex.Line(), l.lex.Rest(), "", "%s: %v", msg, err)
		return
	}

	switch lexErr.Kind {
	case lexer.InvalidNumber:
		l.errorf(lexErr.Line, lexErr.Range, msg, "invalid number")
	case lexer.InvalidHeader:
		l.errorf(lexErr.Line, lexErr.Range, msg, "unterminated header")
	default:
		l.errorf(lexErr.Line, lexErr.Range, "", "%s", msg)
	}
}
