package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/roach88/kadai/internal/drill"
	"github.com/roach88/kadai/internal/logging"
	"github.com/roach88/kadai/internal/runid"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Lang    string // BCP 47 tag matched against the report languages
	Data    string // dataset path; empty means the built-in sample

	// RunIDs overrides the trace id generator (for testing).
	// If nil, defaults to runid.UUIDv7Generator.
	RunIDs runid.Generator

	lang   language.Tag
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Running it without a subcommand
// runs every exercise.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kadai",
		Short: "kadai - introductory programming exercises",
		Long: `Run the three classroom exercises and print their report:

  1. sum the price list
  2. list employees with more than 2 years of experience
  3. sort tasks by priority (stable) and list the priorities

Example:
  kadai
  kadai --lang en
  kadai sort --data ./tasks.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercises(opts, cmd, drill.AllExercises()...)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "ja", "report language (ja|en)")
	cmd.PersistentFlags().StringVar(&opts.Data, "data", "", "path to a YAML dataset (default: built-in sample)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(NewExerciseCommand(opts, drill.ExerciseSum, "Sum the price list"))
	cmd.AddCommand(NewExerciseCommand(opts, drill.ExerciseFilter, "List experienced employees"))
	cmd.AddCommand(NewExerciseCommand(opts, drill.ExerciseSort, "Sort tasks by priority"))

	return cmd
}

// resolve validates global flags and configures logging.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	tag, err := drill.MatchLanguage(o.Lang)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --lang", err)
	}
	o.lang = tag

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = logging.NewLogger(level, "text", cmd.ErrOrStderr()).
		With(slog.String("component", "cli"))

	if o.RunIDs == nil {
		o.RunIDs = runid.UUIDv7Generator{}
	}
	return nil
}
