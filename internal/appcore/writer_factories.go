package appcore

import (
	"io"

	"guardwalk/internal/output"
	"guardwalk/internal/writers"
)

// ReportWriterFactory starts the writer for one output format.
type ReportWriterFactory struct {
	Format    string
	Header    bool
	Positions bool
	Pretty    bool
}

func NewReportWriterFactory(format string, header, positions, pretty bool) ReportWriterFactory {
	return ReportWriterFactory{
		Format:    format,
		Header:    header,
		Positions: positions,
		Pretty:    pretty,
	}
}

// NeedCandidates reports whether every evaluated candidate must be kept on
// the report (JSONL lists them); other formats only need the loop set.
func (w ReportWriterFactory) NeedCandidates() bool {
	return w.Format == output.FormatJSONL
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, writers.Options{
		Header:    w.Header,
		Positions: w.Positions,
		Pretty:    w.Pretty,
	}, bufSize)
}
