// internal/writers/report.go
package writers

import (
	"io"

	"guardwalk/internal/jsonlutil"
	"guardwalk/internal/output"
	"guardwalk/internal/pretty"
)

func init() {
	Register(output.FormatText, writeText)
	Register(output.FormatJSON, writeJSON)
	Register(output.FormatJSONL, writeJSONL)
}

func renderReport(r output.Report) string {
	return pretty.RenderMap(r.Grid, r.Start, r.Walk.Visited, r.Loops)
}

// text streams: one summary row per report as it arrives.
func writeText(w io.Writer, in <-chan output.Report, opt Options) error {
	var render func(output.Report) string
	if opt.Pretty {
		render = renderReport
	}
	return output.StreamText(w, in, opt.Header, opt.Positions, render)
}

// json buffers: the array is written once input is closed.
func writeJSON(w io.Writer, in <-chan output.Report, opt Options) error {
	var buf []output.Report
	for r := range in {
		buf = append(buf, r)
	}
	return output.WriteJSON(w, buf, opt.Positions)
}

// jsonl streams: every evaluated candidate of a report, row-major, one per line.
func writeJSONL(w io.Writer, in <-chan output.Report, _ Options) error {
	return jsonlutil.Stream(w, in, func(r output.Report) []any {
		cs := output.ToAPICandidates(r)
		lines := make([]any, len(cs))
		for i := range cs {
			lines[i] = cs[i]
		}
		return lines
	}, IsBrokenPipe)
}
