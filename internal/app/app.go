package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/k2d222/twwe-sub000/internal/automap"
	"github.com/k2d222/twwe-sub000/internal/gridfile"
	"github.com/k2d222/twwe-sub000/internal/lint"
	"github.com/k2d222/twwe-sub000/internal/rules"
	"github.com/k2d222/twwe-sub000/internal/settings"
)

var (
	// ErrLintFailed is returned by Lint when the file has error-level lints.
	ErrLintFailed = errors.New("rule file has errors")
	// ErrNoConfig is returned by Apply when neither the options nor the
	// settings select a config.
	ErrNoConfig = errors.New("no config selected")
)

// App runs the command line operations.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	engine *automap.Engine
}

// New creates an App writing results to outW and logs to logW.
func New(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg, logW)

	engine, err := automap.NewEngine(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	logger.Debug("App configured.", "log_level", cfg.LogLevel, "cache_size", cfg.CacheSize)

	return &App{
		outW:   outW,
		logger: logger,
		engine: engine,
	}, nil
}

func readRules(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read rule file %s: %w", path, err)
	}

	return string(data), nil
}

// Lint prints every lint of the rule file at path, one per line, prefixed
// with the path. It returns ErrLintFailed if any lint is an error.
func (a *App) Lint(path string) error {
	text, err := readRules(path)
	if err != nil {
		return err
	}

	diags := lint.Lint(text)
	a.logger.Debug("Lint finished.", "path", path, "lints", diags.Len())

	for _, l := range diags.Lints {
		fmt.Fprintf(a.outW, "%s:%s\n", path, l)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%s: %w (%d errors)", path, ErrLintFailed, len(diags.Errors()))
	}

	return nil
}

// Parse validates the rule file at path. With dump set it prints the rule
// set as YAML, otherwise the config names.
func (a *App) Parse(path string, dump bool) error {
	text, err := readRules(path)
	if err != nil {
		return err
	}

	configs, err := a.engine.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a.logger.Debug("Rule file parsed.", "path", path, "configs", len(configs))

	if !dump {
		return a.printNames(configs)
	}

	data, err := rules.Marshal(configs)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	_, err = a.outW.Write(data)

	return err
}

func (a *App) printNames(configs []*rules.Config) error {
	names := rules.Names(configs)
	if len(names) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(a.outW, strings.Join(names, "\n"))

	return err
}

// ApplyOptions selects the inputs of Apply.
type ApplyOptions struct {
	RulesPath string
	GridPath  string
	// OutPath receives the rewritten grid; empty writes it to the output.
	OutPath string
	// SettingsPath is an optional TOML file providing Config and Seed.
	SettingsPath string
	// SaveSettings writes the config and seed actually used back to
	// SettingsPath.
	SaveSettings bool

	// Config overrides the settings' config when not empty.
	Config string
	// Seed overrides the settings' seed when SeedSet.
	Seed    uint32
	SeedSet bool
}

// Apply runs a config of a rule file on a grid file and returns the seed
// used.
func (a *App) Apply(opts ApplyOptions) (uint32, error) {
	var st settings.Settings

	if opts.SettingsPath != "" {
		loaded, err := settings.Load(opts.SettingsPath)
		if err != nil {
			return 0, err
		}

		st = loaded
	}

	if opts.Config != "" {
		st.Config = opts.Config
	}

	if opts.SeedSet {
		st.Seed = opts.Seed
	}

	if !st.HasConfig() {
		return 0, ErrNoConfig
	}

	text, err := readRules(opts.RulesPath)
	if err != nil {
		return 0, err
	}

	grid, err := gridfile.LoadFile(opts.GridPath)
	if err != nil {
		return 0, err
	}

	a.logger.Info("Applying automapper.", "config", st.Config, "seed", st.Seed,
		"width", grid.Width(), "height", grid.Height())

	seed, err := a.engine.Apply(grid, text, st.Config, st.Seed)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opts.RulesPath, err)
	}

	a.logger.Debug("Automapper applied.", "seed", seed)

	if opts.OutPath != "" {
		if err := gridfile.WriteFile(grid, opts.OutPath); err != nil {
			return 0, err
		}
	} else {
		data, err := gridfile.Marshal(grid)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal grid: %w", err)
		}

		if _, err := a.outW.Write(data); err != nil {
			return 0, err
		}
	}

	if opts.SaveSettings && opts.SettingsPath != "" {
		st.Seed = seed
		if err := settings.Save(opts.SettingsPath, st); err != nil {
			return 0, err
		}

		a.logger.Debug("Settings saved.", "path", opts.SettingsPath)
	}

	return seed, nil
}
