package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/roach88/kadai/internal/cli"
	"github.com/roach88/kadai/internal/logging"
)

func main() {
	logging.Init(slog.LevelWarn, "text", os.Stderr)
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
