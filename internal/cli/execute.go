package cli

import (
	"context"
	"fmt"
	"io"
)

// Execute runs the CLI with args and returns the process exit code.
// Errors are printed to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "kadai: %v\n", err)
	}
	return GetExitCode(err)
}
