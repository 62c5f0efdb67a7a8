// pkg/api/report_v1.go
package api

// PositionV1 is a grid cell (x = column, y = row, 0-based).
type PositionV1 struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// StartV1 is the guard's initial state.
type StartV1 struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"` // "north" | "east" | "south" | "west"
	Degrees int    `json:"degrees"` // clockwise from north: 0 | 90 | 180 | 270
}

// ReportV1 is the stable JSON schema for one simulated map.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	RunID     string  `json:"run_id"`
	Source    string  `json:"source"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Obstacles int     `json:"obstacles"`
	Start     StartV1 `json:"start"`
	Visited   int     `json:"visited"`
	Steps     int     `json:"steps"`

	// Absent when the obstruction search was skipped (--part visited).
	LoopObstructions *int `json:"loop_obstructions,omitempty"`

	VisitedPositions []PositionV1 `json:"visited_positions,omitempty"`
	Obstructions     []PositionV1 `json:"obstructions,omitempty"`
}

// CandidateV1 is the stable JSONL schema for one evaluated obstruction candidate.
type CandidateV1 struct {
	RunID   string `json:"run_id"`
	Source  string `json:"source"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Looping bool   `json:"looping"`
	Steps   int    `json:"steps"`
}
