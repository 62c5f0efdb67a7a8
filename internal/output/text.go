// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"guardwalk/internal/grid"
)

// FormatRowTSV returns the summary row for r (no trailing newline).
func FormatRowTSV(r Report) string {
	loops := notSearched
	if r.Searched {
		loops = strconv.Itoa(r.Loops.Len())
	}
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s",
		r.Source, r.Grid.Width(), r.Grid.Height(), r.Walk.Visited.Len(), loops)
}

func writePositions(w io.Writer, source, kind string, ps []grid.Position) error {
	for _, p := range ps {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", source, kind, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextRow writes one report: its summary row, then optional position
// rows and the optional rendered block.
func WriteTextRow(w io.Writer, r Report, positions bool, render func(Report) string) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
		return err
	}
	if positions {
		if err := writePositions(w, r.Source, KindVisited, r.Walk.Visited.Sorted()); err != nil {
			return err
		}
		if r.Searched {
			if err := writePositions(w, r.Source, KindObstruction, r.Loops.Sorted()); err != nil {
				return err
			}
		}
	}
	if render != nil {
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText writes the header (optional) and one block per report from in.
// render may be nil.
func StreamText(w io.Writer, in <-chan Report, header, positions bool, render func(Report) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := WriteTextRow(w, r, positions, render); err != nil {
			return err
		}
	}
	return nil
}
