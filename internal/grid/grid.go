// internal/grid/grid.go
package grid

import (
	"errors"
	"fmt"
)

// ErrConfig marks a grid or start state that cannot be simulated.
// Every construction-time failure wraps it so callers can classify with errors.Is.
var ErrConfig = errors.New("configuration error")

// Grid is an immutable rectangular table of open and blocked cells.
// Cells are stored row-major; nothing in this package mutates them after New.
type Grid struct {
	width, height int
	cells         []bool // true = blocked
}

// New copies rows into a Grid. Rows must all share the length of the first row.
func New(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrConfig)
	}
	w := len(rows[0])
	cells := make([]bool, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrConfig, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid{width: w, height: len(rows), cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Area is the number of cells; Area()*4 bounds the distinct agent states.
func (g *Grid) Area() int { return g.width * g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Blocked reports whether p holds an obstacle. Out-of-bounds cells are not blocked.
func (g *Grid) Blocked(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.Y*g.width+p.X]
}

// Obstacles counts blocked cells.
func (g *Grid) Obstacles() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}
