// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"guardwalk/internal/appcore"
	"guardwalk/internal/cli"
	"guardwalk/internal/clibase"
	"guardwalk/internal/cliutil"
	"guardwalk/internal/cmdutil"
	"guardwalk/internal/version"
	"guardwalk/internal/writers"
)

const name = "guardwalk"

// flushed maps a final flush of stdout to an exit code.
func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitIO
	}
	return code
}

// RunContextIO is RunContext with an explicit stdin for '-' maps.
func RunContextIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flushed(outw, stderr, appcore.ExitOK)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushed(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(outw, stderr, appcore.ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	if slices.Contains(opts.Maps, cliutil.Stdin) && cmdutil.IsTerminal(stdin) {
		cmdutil.Warnf(stderr, opts.Quiet, "reading a map from the terminal; end it with Ctrl-D")
	}
	coreOpts := appcore.Options{
		Maps:           opts.Maps,
		Search:         opts.Search(),
		Threads:        opts.Threads,
		Quiet:          opts.Quiet,
		NoLoopExitCode: opts.NoLoopExitCode,
	}
	writer := appcore.NewReportWriterFactory(opts.Output, opts.Header, opts.Positions, opts.Pretty)
	return appcore.Run(parent, stdin, stdout, stderr, log, coreOpts, writer)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunContextIO(parent, argv, os.Stdin, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
