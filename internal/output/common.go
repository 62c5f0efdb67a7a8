package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source\twidth\theight\tvisited\tloop_obstructions"

// Position row kinds emitted under --positions.
const (
	KindVisited     = "visited"
	KindObstruction = "obstruction"
)

// notSearched fills the loop_obstructions column when the search was skipped.
const notSearched = "-"
