package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([][]bool{{false, false}, {false}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrConfig)
	_, err = New([][]bool{{}})
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]bool{{false, true}, {false, false}}
	g, err := New(rows)
	require.NoError(t, err)

	rows[0][1] = false
	assert.True(t, g.Blocked(Position{X: 1, Y: 0}), "grid must not alias caller rows")
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 4, g.Area())
	assert.Equal(t, 1, g.Obstacles())
}

func TestBoundsAndBlocked(t *testing.T) {
	g, err := New([][]bool{{true, false, false}})
	require.NoError(t, err)

	assert.True(t, g.InBounds(Position{X: 2, Y: 0}))
	assert.False(t, g.InBounds(Position{X: 3, Y: 0}))
	assert.False(t, g.InBounds(Position{X: 0, Y: -1}))
	assert.True(t, g.Blocked(Position{X: 0, Y: 0}))
	assert.False(t, g.Blocked(Position{X: -1, Y: 0}), "outside cells are never blocked")
}

func TestHeadingTurnCycle(t *testing.T) {
	h := North
	var seen []Heading
	for i := 0; i < 4; i++ {
		seen = append(seen, h)
		h = h.Turn()
	}
	assert.Equal(t, []Heading{North, East, South, West}, seen)
	assert.Equal(t, North, h)
}

func TestHeadingDegrees(t *testing.T) {
	assert.Equal(t, 0, North.Degrees())
	assert.Equal(t, 90, East.Degrees())
	assert.Equal(t, 180, South.Degrees())
	assert.Equal(t, 270, West.Degrees())
}

func TestHeadingDelta(t *testing.T) {
	s := AgentState{Pos: Position{X: 5, Y: 5}, Heading: North}
	assert.Equal(t, Position{X: 5, Y: 4}, s.Ahead())
	s.Heading = East
	assert.Equal(t, Position{X: 6, Y: 5}, s.Ahead())
	s.Heading = South
	assert.Equal(t, Position{X: 5, Y: 6}, s.Ahead())
	s.Heading = West
	assert.Equal(t, Position{X: 4, Y: 5}, s.Ahead())
	assert.False(t, Heading(7).Valid())
}

func TestPositionSetSortedRowMajor(t *testing.T) {
	s := NewPositionSet(Position{X: 2, Y: 1}, Position{X: 0, Y: 1}, Position{X: 3, Y: 0})
	s.Add(Position{X: 0, Y: 1})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []Position{{3, 0}, {0, 1}, {2, 1}}, s.Sorted())
	assert.True(t, NewPositionSet(Position{X: 0, Y: 1}).SubsetOf(s))
	assert.False(t, NewPositionSet(Position{X: 9, Y: 9}).SubsetOf(s))
}

func TestParseLines(t *testing.T) {
	g, start, err := ParseLines([]string{"..#", ".^.", "", ""})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, AgentState{Pos: Position{X: 1, Y: 1}, Heading: North}, start)
	assert.True(t, g.Blocked(Position{X: 2, Y: 0}))
	assert.False(t, g.Blocked(start.Pos), "marker cell is open")
}

func TestParseMarkers(t *testing.T) {
	for marker, want := range map[string]Heading{"^": North, ">": East, "v": South, "<": West} {
		_, start, err := ParseLines([]string{"." + marker})
		require.NoError(t, err)
		assert.Equal(t, want, start.Heading, "marker %s", marker)
	}
}

func TestParseErrors(t *testing.T) {
	for name, lines := range map[string][]string{
		"no marker":   {"...", "..."},
		"two":         {"^.", ".^"},
		"ragged":      {"^..", ".."},
		"unknown":     {"^x"},
		"empty":       {"", ""},
		"inner-blank": {"^.", "", ".."},
	} {
		_, _, err := ParseLines(lines)
		assert.ErrorIs(t, err, ErrConfig, name)
	}
}

func TestParseBlankLinesNamed(t *testing.T) {
	_, _, err := ParseLines([]string{"", "^.", ".."})
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorContains(t, err, "line 1 is blank")

	_, _, err = ParseLines([]string{"^.", "  ", ".."})
	assert.ErrorContains(t, err, "line 2 is blank")
}

func TestParseReaderRoundTrip(t *testing.T) {
	src := "....#.....\r\n.........#\r\n..........\r\n..#.......\r\n.......#..\r\n..........\r\n.#..^.....\r\n........#.\r\n#.........\r\n......#...\r\n"
	g, start, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, 8, g.Obstacles())
	assert.Equal(t, AgentState{Pos: Position{X: 4, Y: 6}, Heading: North}, start)
	assert.True(t, g.Blocked(Position{X: 9, Y: 1}), "CR must not become a cell")
}
