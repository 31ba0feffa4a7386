// Package main provides the CLI entrypoint for automap.
//
// automap checks and runs automapper rule files:
//   - lint:  report every problem of a rule file, editor style
//   - parse: validate a rule file strictly, list or dump its configs
//   - apply: rewrite a YAML grid file with one config of a rule file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/k2d222/twwe-sub000/internal/app"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, app.ErrLintFailed) {
			fmt.Fprintln(os.Stderr, "automap:", err)
		}

		os.Exit(1)
	}
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	defaults := app.ConfigFromEnv()
	cfg := defaults

	var a *app.App

	root := &cobra.Command{
		Use:           "automap",
		Short:         "Check and run tile automapper rule files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			validated, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}

			a, err = app.New(outW, errW, validated)

			return err
		},
	}

	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel,
		"Logging level: debug, info, warn or error (env "+app.EnvLogLevel+").")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", defaults.LogFormat,
		"Log output format: text or json (env "+app.EnvLogFormat+").")

	root.AddCommand(
		&cobra.Command{
			Use:   "lint FILE",
			Short: "Report problems in a rule file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Lint(args[0])
			},
		},
		newParseCmd(&a),
		newApplyCmd(&a, outW, errW),
	)

	return root
}

func newParseCmd(a **app.App) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:     "parse FILE",
		Aliases: []string{"configs"},
		Short:   "Validate a rule file and list its configs",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*a).Parse(args[0], dump)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Print the parsed rule set as YAML.")

	return cmd
}

func newApplyCmd(a **app.App, outW, errW io.Writer) *cobra.Command {
	var opts app.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a config of a rule file to a grid file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SeedSet = cmd.Flags().Changed("seed")

			seed, err := (*a).Apply(opts)
			if err != nil {
				return err
			}

			// Without --out the grid goes to standard output.
			seedW := outW
			if opts.OutPath == "" {
				seedW = errW
			}

			fmt.Fprintf(seedW, "seed %d\n", seed)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.RulesPath, "rules", "r", "", "Rule file.")
	flags.StringVarP(&opts.GridPath, "grid", "g", "", "YAML grid file to read.")
	flags.StringVarP(&opts.OutPath, "out", "o", "", "Where to write the result (default: standard output).")
	flags.StringVarP(&opts.Config, "config", "c", "", "Config to apply (default: from --settings).")
	flags.Uint32Var(&opts.Seed, "seed", 0, "Seed of the random rules; 0 draws a fresh one (default: from --settings).")
	flags.StringVar(&opts.SettingsPath, "settings", "", "TOML file with the selected config and seed.")
	flags.BoolVar(&opts.SaveSettings, "save", false, "Write the config and seed used back to --settings.")

	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}
