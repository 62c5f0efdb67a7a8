// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"guardwalk/internal/grid"
	"guardwalk/pkg/api"
)

func toAPIPositions(ps []grid.Position) []api.PositionV1 {
	if len(ps) == 0 {
		return nil
	}
	out := make([]api.PositionV1, len(ps))
	for i, p := range ps {
		out[i] = api.PositionV1{X: p.X, Y: p.Y}
	}
	return out
}

// ToAPIReport converts a Report to the stable wire schema (v1).
// Position lists are attached only when positions is set.
func ToAPIReport(r Report, positions bool) api.ReportV1 {
	v := api.ReportV1{
		RunID:     r.RunID,
		Source:    r.Source,
		Width:     r.Grid.Width(),
		Height:    r.Grid.Height(),
		Obstacles: r.Grid.Obstacles(),
		Start: api.StartV1{
			X:       r.Start.Pos.X,
			Y:       r.Start.Pos.Y,
			Heading: r.Start.Heading.String(),
			Degrees: r.Start.Heading.Degrees(),
		},
		Visited: r.Walk.Visited.Len(),
		Steps:   r.Walk.Steps,
	}
	if r.Searched {
		n := r.Loops.Len()
		v.LoopObstructions = &n
	}
	if positions {
		v.VisitedPositions = toAPIPositions(r.Walk.Visited.Sorted())
		if r.Searched {
			v.Obstructions = toAPIPositions(r.Loops.Sorted())
		}
	}
	return v
}

// ToAPICandidates converts the evaluated candidates of r (row-major order).
func ToAPICandidates(r Report) []api.CandidateV1 {
	cs := append([]Candidate(nil), r.Candidates...)
	SortCandidates(cs)
	out := make([]api.CandidateV1, len(cs))
	for i, c := range cs {
		out[i] = api.CandidateV1{
			RunID:   r.RunID,
			Source:  r.Source,
			X:       c.Pos.X,
			Y:       c.Pos.Y,
			Looping: c.Looping,
			Steps:   c.Steps,
		}
	}
	return out
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []Report, positions bool) error {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r, positions))
	}
	return EncodePretty(w, out)
}
