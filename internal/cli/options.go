// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"guardwalk/internal/clibase"
	"guardwalk/internal/cliutil"
)

// Options holds all guardwalk flags and arguments.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] map.txt [more maps...]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --map - < map.txt\n", name)
		_, _ = fmt.Fprintln(out, "\nMap format: '#' obstacle, '.' open, one guard marker ^ > v < (north/east/south/west).")
	})
	return fs
}

// PrintExamples prints a short quickstart for guardwalk.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "guardwalk", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Count visited cells and loop-making obstructions:")
		_, _ = fmt.Fprintln(w, "  guardwalk lab.txt")
		_, _ = fmt.Fprintln(w, "\nVisited cells only, with the map drawn:")
		_, _ = fmt.Fprintln(w, "  guardwalk --part visited --pretty lab.txt")
		_, _ = fmt.Fprintln(w, "\nEvery candidate as JSONL, 8 workers:")
		_, _ = fmt.Fprintln(w, "  guardwalk -o jsonl -t 8 maps/*.txt.gz")
	})
}

// ParseArgs registers and parses all flags. Flags and map paths may be mixed.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}
	o.Common = c
	return o, nil
}
