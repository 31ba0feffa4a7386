package automap

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/k2d222/twwe-sub000/internal/parser"
	"github.com/k2d222/twwe-sub000/internal/rules"
	"github.com/k2d222/twwe-sub000/internal/tile"
)

// DefaultCacheSize is the number of rule files an Engine keeps parsed.
const DefaultCacheSize = 64

// ErrConfigNotFound is returned when a rule file has no config of the
// requested name.
var ErrConfigNotFound = errors.New("config not found")

// Engine applies rule files given as text. Parsed rule sets are kept in a
// bounded LRU cache keyed by the rule text, so re-running a file with a new
// seed does not parse it again. An Engine is safe for concurrent use; each
// Apply still needs exclusive access to its grid.
type Engine struct {
	parsed *lru.Cache[string, []*rules.Config]
}

// NewEngine creates an Engine caching up to size rule files.
func NewEngine(size int) (*Engine, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, []*rules.Config](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule cache: %w", err)
	}

	return &Engine{parsed: cache}, nil
}

// Parse returns the configs of text, parsing it on a cache miss. Invalid
// files are not cached.
func (e *Engine) Parse(text string) ([]*rules.Config, error) {
	if configs, ok := e.parsed.Get(text); ok {
		return configs, nil
	}

	configs, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	e.parsed.Add(text, configs)

	return configs, nil
}

// Config returns the config called name from text.
func (e *Engine) Config(text, name string) (*rules.Config, error) {
	configs, err := e.Parse(text)
	if err != nil {
		return nil, err
	}

	cfg := rules.Find(configs, name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	return cfg, nil
}

// Apply runs config name of text on grid and returns the seed used.
func (e *Engine) Apply(grid tile.Grid, text, name string, seed uint32) (uint32, error) {
	cfg, err := e.Config(text, name)
	if err != nil {
		return 0, err
	}

	return Apply(grid, cfg, seed), nil
}

// Len returns the number of cached rule files.
func (e *Engine) Len() int {
	return e.parsed.Len()
}
