package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/kadai/internal/dataset"
	"github.com/roach88/kadai/internal/drill"
)

// NewExerciseCommand creates a subcommand that runs a single exercise.
func NewExerciseCommand(rootOpts *RootOptions, e drill.Exercise, short string) *cobra.Command {
	return &cobra.Command{
		Use:           e.String(),
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExercises(rootOpts, cmd, e)
		},
	}
}

func runExercises(opts *RootOptions, cmd *cobra.Command, exercises ...drill.Exercise) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	ds, err := loadDataset(opts)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidDataset, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid dataset", err)
	}
	opts.logger.Debug("dataset loaded",
		"source", datasetSource(opts),
		"prices", len(ds.Prices),
		"employees", len(ds.Employees),
		"tasks", len(ds.Tasks))

	// JSON mode still runs the reporters; their text goes nowhere.
	var out io.Writer = cmd.OutOrStdout()
	if formatter.JSON() {
		out = io.Discard
	}

	runner := &drill.Runner{Out: out, Lang: opts.lang, Logger: opts.logger}
	result, err := runner.Run(ds, exercises...)
	if err != nil {
		_ = formatter.Error(ErrCodeReportFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "report failed", err)
	}

	return formatter.Success(result, opts.RunIDs.Generate())
}

func loadDataset(opts *RootOptions) (*dataset.Dataset, error) {
	if opts.Data == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(opts.Data)
}

func datasetSource(opts *RootOptions) string {
	if opts.Data == "" {
		return "sample"
	}
	return opts.Data
}
