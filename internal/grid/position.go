// internal/grid/position.go
package grid

import (
	"fmt"
	"sort"
)

// Position is a cell coordinate: X is the column, Y the row, both 0-based.
type Position struct {
	X, Y int
}

func (p Position) Add(d Position) Position { return Position{X: p.X + d.X, Y: p.Y + d.Y} }

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// AgentState is the minimal state that determines the rest of a walk on a fixed grid.
type AgentState struct {
	Pos     Position
	Heading Heading
}

// Ahead is the cell probed by the next tick.
func (s AgentState) Ahead() Position { return s.Pos.Add(s.Heading.Delta()) }

func (s AgentState) String() string { return fmt.Sprintf("%s %s", s.Pos, s.Heading) }

// PositionSet is an unordered set of positions.
type PositionSet map[Position]struct{}

func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Add(p Position) { s[p] = struct{}{} }
func (s PositionSet) Len() int       { return len(s) }

func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// SubsetOf reports whether every member of s is in other.
func (s PositionSet) SubsetOf(other PositionSet) bool {
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order (Y, then X).
func (s PositionSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	SortPositions(out)
	return out
}

// Less is row-major order: by Y, then X.
func Less(a, b Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// SortPositions orders ps row-major in place.
func SortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool { return Less(ps[i], ps[j]) })
}
