package parser

import (
	"errors"
	"fmt"

	"github.com/k2d222/twwe-sub000/internal/lexer"
	"github.com/k2d222/twwe-sub000/internal/rules"
	"github.com/k2d222/twwe-sub000/internal/tile"
)

// ErrInvalid is wrapped by every error Parse returns.
var ErrInvalid = errors.New("invalid automapper file")

// Error locates the first structural problem of a rule file.
type Error struct {
	// Line is 0-based.
	Line  int
	Range lexer.Range
	Msg   string
	// Err is the underlying lexer error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: line %d, col %d: %s", ErrInvalid, e.Line+1, e.Range.Start+1, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalid}
	}

	return []error{ErrInvalid, e.Err}
}

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

// directives maps each directive to whether it is only valid after an
// Index line of the current run.
var directives = map[string]bool{
	wordNoLayerCopy:   false,
	wordIndex:         false,
	wordNewRun:        true,
	wordPos:           true,
	wordRandom:        true,
	wordNoDefaultRule: true,
}

// indexFlags maps the flag words of an Index line onto tile flags.
//
// XFLIP sets the VFlip bit and YFLIP the HFlip bit, the reverse of what
// Pos states do (see stateFlags). Existing rule files depend on this
// assignment, so it is kept as is.
var indexFlags = map[string]tile.Flags{
	wordXFlip:  tile.VFlip,
	wordYFlip:  tile.HFlip,
	wordRotate: tile.Rotate,
}

// stateFlags maps the flag words of a Pos state onto tile flags. NONE is
// handled separately.
var stateFlags = map[string]tile.Flags{
	wordXFlip:  tile.HFlip,
	wordYFlip:  tile.VFlip,
	wordRotate: tile.Rotate,
}

// Parse builds the rule set described by text. Any structural error
// rejects the whole file; there is no partial result.
func Parse(text string) ([]*rules.Config, error) {
	p := &parser{lex: lexer.New(text)}

	for p.lex.NextLine() {
		if err := p.parseLine(); err != nil {
			return nil, err
		}
	}

	p.finishIndexRule()

	return p.configs, nil
}

// parser is the construction state threaded through a parse.
type parser struct {
	lex *lexer.Lexer

	configs   []*rules.Config
	config    *rules.Config
	run       *rules.Run
	indexRule *rules.IndexRule
	// defaultRule is cleared by an explicit (0, 0) Pos or NoDefaultRule.
	defaultRule bool
}

func (p *parser) newConfig(name string) {
	p.finishIndexRule()
	p.config = &rules.Config{Name: name}
	p.configs = append(p.configs, p.config)
	p.newRun()
}

func (p *parser) newRun() {
	p.finishIndexRule()
	p.run = &rules.Run{LayerCopy: true}
	p.config.Runs = append(p.config.Runs, p.run)
}

func (p *parser) newIndexRule(t tile.Tile) {
	p.finishIndexRule()
	p.indexRule = &rules.IndexRule{Tile: t}
	p.defaultRule = true
}

// finishIndexRule appends the implicit default rule if it still applies
// and attaches the current index rule to the current run.
func (p *parser) finishIndexRule() {
	if p.indexRule == nil {
		return
	}

	if p.defaultRule {
		p.indexRule.Rules = append(p.indexRule.Rules, rules.DefaultRule())
	}

	p.run.IndexRules = append(p.run.IndexRules, p.indexRule)
	p.indexRule = nil
}

func (p *parser) parseLine() error {
	tok, err := p.lex.Next()
	if err != nil {
		return p.lexError(err, "expected header or directive")
	}

	switch tok.Kind {
	case lexer.Header:
		p.newConfig(tok.Text)
		return nil
	case lexer.Word:
		return p.parseDirective(tok)
	default:
		return p.fail(tok, "expected header or directive, got %s", tok.Kind)
	}
}

func (p *parser) parseDirective(tok lexer.Token) error {
	if p.config == nil {
		return p.fail(tok, "directive %q before the first [header]", tok.Text)
	}

	needsIndex, known := directives[tok.Text]
	if !known {
		return p.fail(tok, "unknown directive %q", tok.Text)
	}

	if needsIndex && p.indexRule == nil {
		return p.fail(tok, "directive %q requires a preceding %s in the same run", tok.Text, wordIndex)
	}

	switch tok.Text {
	case wordNoLayerCopy:
		p.run.LayerCopy = false
	case wordIndex:
		return p.parseIndex()
	case wordNewRun:
		p.newRun()
	case wordPos:
		return p.parsePos()
	case wordRandom:
		return p.parseRandom()
	case wordNoDefaultRule:
		p.defaultRule = false
	}

	return nil
}

// Index <id> [XFLIP|YFLIP|ROTATE]*
func (p *parser) parseIndex() error {
	id, err := p.expectInt("tile id")
	if err != nil {
		return err
	}

	t := tile.Tile{ID: id}

	for {
		w, ok := p.acceptWord(indexFlags)
		if !ok {
			break
		}

		t.Flags |= indexFlags[w]
	}

	p.newIndexRule(t)

	return nil
}

// Pos <dx> <dy> (EMPTY | FULL | (INDEX|NOTINDEX) <id> [flags]* (OR <id> [flags]*)*)
func (p *parser) parsePos() error {
	dx, err := p.expectInt("x offset")
	if err != nil {
		return err
	}

	dy, err := p.expectInt("y offset")
	if err != nil {
		return err
	}

	sel, err := p.lex.Next()
	if err != nil {
		return p.lexError(err, "expected EMPTY, FULL, INDEX or NOTINDEX")
	}

	rule := &rules.PosRule{Offset: rules.Point{X: dx, Y: dy}}

	switch {
	case sel.Kind == lexer.Word && (sel.Text == wordEmpty || sel.Text == wordFull):
		rule.States = []rules.TileState{{ID: tile.Empty}}
		rule.Invert = sel.Text == wordFull
	case sel.Kind == lexer.Word && (sel.Text == wordIndexSel || sel.Text == wordNotIndex):
		rule.Invert = sel.Text == wordNotIndex

		states, err := p.parseStates()
		if err != nil {
			return err
		}

		rule.States = states
	default:
		return p.fail(sel, "expected EMPTY, FULL, INDEX or NOTINDEX, got %q", sel.Text)
	}

	if dx == 0 && dy == 0 {
		p.defaultRule = false
	}

	p.indexRule.Rules = append(p.indexRule.Rules, rule)

	return nil
}

var stateWords = map[string]tile.Flags{
	wordXFlip:  stateFlags[wordXFlip],
	wordYFlip:  stateFlags[wordYFlip],
	wordRotate: stateFlags[wordRotate],
	wordNone:   tile.NoFlags,
	wordOr:     tile.NoFlags,
}

func (p *parser) parseStates() ([]rules.TileState, error) {
	var states []rules.TileState

	for {
		id, err := p.expectInt("tile id")
		if err != nil {
			return nil, err
		}

		state := rules.TileState{ID: id}
		or := false

		for {
			w, ok := p.acceptWord(stateWords)
			if !ok {
				break
			}

			if w == wordOr {
				or = true
				break
			}

			if w == wordNone {
				state.Constrain(tile.VFlip|tile.HFlip|tile.Rotate, false)
				continue
			}

			state.Constrain(stateFlags[w], true)
		}

		states = append(states, state)

		if !or {
			return states, nil
		}
	}
}

// Random <n> | <fraction> | <percent>%
func (p *parser) parseRandom() error {
	tok, err := p.lex.Next()
	if err != nil {
		return p.lexError(err, "expected probability")
	}

	var coef float64

	switch tok.Kind {
	case lexer.Int:
		if tok.Int <= 0 {
			return p.fail(tok, "random value must be positive, got %d", tok.Int)
		}

		coef = 1 / float64(tok.Int)
	case lexer.Float:
		if tok.Float <= 0 {
			return p.fail(tok, "random value must be positive, got %g", tok.Float)
		}

		coef = tok.Float
	default:
		return p.fail(tok, "expected probability, got %q", tok.Text)
	}

	p.indexRule.Rules = append(p.indexRule.Rules, &rules.RandomRule{Coef: coef})

	return nil
}

func (p *parser) expectInt(what string) (int, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return 0, p.lexError(err, "expected "+what)
	}

	if tok.Kind != lexer.Int {
		return 0, p.fail(tok, "expected %s, got %q", what, tok.Text)
	}

	return tok.Int, nil
}

// acceptWord consumes the next token if it is a word present in set.
func (p *parser) acceptWord(set map[string]tile.Flags) (string, bool) {
	tok, err := p.lex.Peek()
	if err != nil || tok.Kind != lexer.Word {
		return "", false
	}

	if _, ok := set[tok.Text]; !ok {
		return "", false
	}

	_, _ = p.lex.Next()

	return tok.Text, true
}

func (p *parser) fail(tok lexer.Token, format string, args ...any) error {
	return &Error{Line: tok.Line, Range: tok.Range, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) lexError(err error, msg string) error {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return &Error{Line: lexErr.Line, Range: lexErr.Range, Msg: msg, Err: err}
	}

	return &Error{Line: p.lex.Line(), Range: lexer.Range{Start: p.lex.Col(), End: p.lex.Col()}, Msg: msg, Err: err}
}
