// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples. The app prints
// the quickstart and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes a quickstart block framed by a title line and a
// pointer to --help. A nil out is a no-op.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintf(out, "\nSee `%s --help` for every flag.\n", name)
}
