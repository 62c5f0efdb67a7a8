package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a tool entry point with SIGINT/SIGTERM cancellation and exits
// with its code. No arguments means help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(runWithSignals(run, os.Args[1:], os.Stdout, os.Stderr))
}

func runWithSignals(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	// A signal that arrived after the work finished still counts as cancel.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
