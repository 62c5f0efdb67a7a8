// internal/grid/parse.go
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map text alphabet.
const (
	CellOpen    = '.'
	CellBlocked = '#'
)

// Parse reads a map: '#' blocked, '.' open, and exactly one guard marker
// (^ > v <) standing on an open cell. Trailing blank lines and CRs are ignored.
func Parse(r io.Reader) (*Grid, AgentState, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, AgentState{}, err
	}
	return ParseLines(lines)
}

// ParseLines is Parse over pre-split lines.
func ParseLines(lines []string) (*Grid, AgentState, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		start AgentState
		found bool
	)
	rows := make([][]bool, len(lines))
	for y, line := range lines {
		if strings.TrimSpace(line) == "" {
			return nil, AgentState{}, fmt.Errorf("%w: line %d is blank inside the map", ErrConfig, y+1)
		}
		row := make([]bool, 0, len(line))
		for _, c := range line {
			x := len(row)
			switch c {
			case CellOpen:
				row = append(row, false)
			case CellBlocked:
				row = append(row, true)
			default:
				h, ok := HeadingFromMarker(c)
				if !ok {
					return nil, AgentState{}, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrConfig, y+1, x+1, c)
				}
				if found {
					return nil, AgentState{}, fmt.Errorf("%w: line %d col %d: second guard marker (first at %s)", ErrConfig, y+1, x+1, start.Pos)
				}
				start = AgentState{Pos: Position{X: x, Y: y}, Heading: h}
				found = true
				row = append(row, false)
			}
		}
		rows[y] = row
	}

	g, err := New(rows)
	if err != nil {
		return nil, AgentState{}, err
	}
	if !found {
		return nil, AgentState{}, fmt.Errorf("%w: no guard marker (^ > v <)", ErrConfig)
	}
	return g, start, nil
}
