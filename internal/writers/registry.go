// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"guardwalk/internal/output"
)

// Options are shared by every report writer.
type Options struct {
	Header    bool // TSV header line (text)
	Positions bool // list individual positions
	Pretty    bool // ASCII map overlay after each text report
}

// ReportWriterFunc drains in and serializes every report to w.
type ReportWriterFunc func(w io.Writer, in <-chan output.Report, opt Options) error

// Writer registry (format → handler). Register in init() blocks of the
// per-format files.
var reportWriters = map[string]ReportWriterFunc{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn ReportWriterFunc) { reportWriters[format] = fn }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartReportWriter spins up a writer goroutine for format. Close the
// returned channel when done, then read exactly one value from the error
// channel. The goroutine keeps draining input after a write error so
// senders never block.
func StartReportWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if fn, ok := reportWriters[format]; ok {
			err = fn(out, in, opt)
		} else {
			err = fmt.Errorf("unknown report format %q (no writer registered)", format)
		}
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

// IsBrokenPipe reports whether err means the reader went away (`| head`,
// closed socket). Such errors end output quietly.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrClosedPipe))
}
