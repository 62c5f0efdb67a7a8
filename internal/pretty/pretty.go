package pretty

import (
	"strings"

	"guardwalk/internal/grid"
)

// Options control the ASCII rendering.
type Options struct {
	// Draw the guard marker (^ > v <) on the start cell instead of VisitedGlyph.
	ShowStart bool

	// Prefix every map line with linePrefix so the block cannot be mistaken
	// for a TSV row.
	Commented bool

	// Glyphs
	OpenGlyph    string // default "."
	BlockedGlyph string // default "#"
	VisitedGlyph string // default "X"
	LoopGlyph    string // default "O"
}

// DefaultOptions keeps the look of the puzzle statement.
var DefaultOptions = Options{
	ShowStart:    true,
	Commented:    true,
	OpenGlyph:    ".",
	BlockedGlyph: "#",
	VisitedGlyph: "X",
	LoopGlyph:    "O",
}

const linePrefix = "# "

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// RenderMap draws g with the walk overlaid. visited and loops may be nil.
// Loop obstructions win over visited cells; the start marker wins over both.
func RenderMap(g *grid.Grid, start grid.AgentState, visited, loops grid.PositionSet) string {
	return renderWithOptions(g, start, visited, loops, DefaultOptions)
}

// renderWithOptions is RenderMap with explicit options.
func renderWithOptions(g *grid.Grid, start grid.AgentState, visited, loops grid.PositionSet, opt Options) string {
	open := orDefault(opt.OpenGlyph, DefaultOptions.OpenGlyph)
	blocked := orDefault(opt.BlockedGlyph, DefaultOptions.BlockedGlyph)
	seen := orDefault(opt.VisitedGlyph, DefaultOptions.VisitedGlyph)
	loop := orDefault(opt.LoopGlyph, DefaultOptions.LoopGlyph)

	var b strings.Builder
	b.Grow((g.Width() + len(linePrefix) + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		if opt.Commented {
			b.WriteString(linePrefix)
		}
		for x := 0; x < g.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			switch {
			case opt.ShowStart && p == start.Pos:
				b.WriteRune(start.Heading.Marker())
			case g.Blocked(p):
				b.WriteString(blocked)
			case loops.Has(p):
				b.WriteString(loop)
			case visited.Has(p):
				b.WriteString(seen)
			default:
				b.WriteString(open)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
