// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"guardwalk/internal/grid"
)

var (
	// ErrInvariant signals a simulator bug, e.g. the guard standing on a blocked cell.
	ErrInvariant = errors.New("invariant violation")

	// ErrNoExit is returned by RunToCompletion when the unmodified walk never
	// leaves the grid. It wraps grid.ErrConfig.
	ErrNoExit = fmt.Errorf("%w: guard never leaves the grid", grid.ErrConfig)
)

// Result classifies a cycle-aware run.
type Result int

const (
	Terminated Result = iota // guard stepped off the grid
	Cycled                   // an (position, heading) state repeated
)

func (r Result) String() string {
	if r == Cycled {
		return "cycled"
	}
	return "terminated"
}

// Walk is the baseline path of an unobstructed run.
type Walk struct {
	Path    []grid.Position  // distinct positions in first-visit order; Path[0] is the start
	Visited grid.PositionSet // same members as Path
	Exit    grid.AgentState  // state whose forward probe left the grid
	Steps   int              // ticks taken, turns included
}

// Outcome is the result of RunDetectingCycle.
type Outcome struct {
	Result Result
	Final  grid.AgentState // exit state when Terminated, repeated state when Cycled
	Steps  int
}

// Simulator advances one guard over a read-only grid. It is safe for
// concurrent use: runs share the grid and own all mutable state.
type Simulator struct {
	g     *grid.Grid
	start grid.AgentState
	limit int // Area*4: more ticks than distinct states means a repeat
}

// New validates the start state against g.
func New(g *grid.Grid, start grid.AgentState) (*Simulator, error) {
	switch {
	case g == nil:
		return nil, fmt.Errorf("%w: nil grid", grid.ErrConfig)
	case !start.Heading.Valid():
		return nil, fmt.Errorf("%w: invalid heading %d", grid.ErrConfig, start.Heading)
	case !g.InBounds(start.Pos):
		return nil, fmt.Errorf("%w: start %s outside %dx%d grid", grid.ErrConfig, start.Pos, g.Width(), g.Height())
	case g.Blocked(start.Pos):
		return nil, fmt.Errorf("%w: start %s is blocked", grid.ErrConfig, start.Pos)
	}
	return &Simulator{g: g, start: start, limit: g.Area() * 4}, nil
}

func (s *Simulator) Grid() *grid.Grid       { return s.g }
func (s *Simulator) Start() grid.AgentState { return s.start }

// step applies one tick. escaped is true when the probe leaves the grid;
// st is then returned unchanged.
func (s *Simulator) step(st grid.AgentState, alsoBlock *grid.Position) (next grid.AgentState, escaped bool, err error) {
	if s.g.Blocked(st.Pos) || (alsoBlock != nil && st.Pos == *alsoBlock) {
		return st, false, fmt.Errorf("%w: guard on blocked cell %s", ErrInvariant, st.Pos)
	}
	ahead := st.Ahead()
	if !s.g.InBounds(ahead) {
		return st, true, nil
	}
	if s.g.Blocked(ahead) || (alsoBlock != nil && ahead == *alsoBlock) {
		st.Heading = st.Heading.Turn()
		return st, false, nil
	}
	st.Pos = ahead
	return st, false, nil
}

// RunToCompletion walks the unmodified grid until the guard leaves it.
func (s *Simulator) RunToCompletion() (Walk, error) {
	w := Walk{Visited: make(grid.PositionSet, 64)}
	st := s.start
	for w.Steps = 0; w.Steps <= s.limit; w.Steps++ {
		if !w.Visited.Has(st.Pos) {
			w.Visited.Add(st.Pos)
			w.Path = append(w.Path, st.Pos)
		}
		next, escaped, err := s.step(st, nil)
		if err != nil {
			return Walk{}, err
		}
		if escaped {
			w.Exit = st
			return w, nil
		}
		st = next
	}
	return Walk{}, fmt.Errorf("%w: still inside after %d ticks from %s", ErrNoExit, s.limit, s.start)
}

// RunDetectingCycle walks from the start with alsoBlock (may be nil) treated
// as one extra obstacle, and reports whether the guard escapes or loops.
func (s *Simulator) RunDetectingCycle(alsoBlock *grid.Position) (Outcome, error) {
	if alsoBlock != nil && *alsoBlock == s.start.Pos {
		return Outcome{}, fmt.Errorf("%w: obstruction %s covers the start", grid.ErrConfig, *alsoBlock)
	}

	seen := make(map[grid.AgentState]struct{}, 256)
	st := s.start
	for steps := 0; steps <= s.limit; steps++ {
		if _, dup := seen[st]; dup {
			return Outcome{Result: Cycled, Final: st, Steps: steps}, nil
		}
		seen[st] = struct{}{}

		next, escaped, err := s.step(st, alsoBlock)
		if err != nil {
			return Outcome{}, err
		}
		if escaped {
			return Outcome{Result: Terminated, Final: st, Steps: steps}, nil
		}
		st = next
	}
	// limit+1 distinct states cannot exist.
	return Outcome{}, fmt.Errorf("%w: %d ticks without repeat or exit", ErrInvariant, s.limit+1)
}
