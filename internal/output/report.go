// internal/output/report.go
package output

import (
	"sort"

	"guardwalk/internal/engine"
	"guardwalk/internal/grid"
)

// Candidate is one evaluated obstruction, kept for JSONL output.
type Candidate struct {
	Pos     grid.Position
	Looping bool
	Steps   int
}

// Report is everything known about one simulated map.
type Report struct {
	RunID  string
	Source string
	Grid   *grid.Grid
	Start  grid.AgentState
	Walk   engine.Walk

	// Searched is false when only the visited part ran; Loops and
	// Candidates are then empty.
	Searched   bool
	Loops      grid.PositionSet
	Candidates []Candidate
}

// SortCandidates orders candidates row-major by position.
func SortCandidates(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool { return grid.Less(cs[i].Pos, cs[j].Pos) })
}
