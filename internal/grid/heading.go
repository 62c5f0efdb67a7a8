// internal/grid/heading.go
package grid

import "fmt"

// Heading is one of the four cardinal directions, ordered clockwise from north.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{"north", "east", "south", "west"}

// unit steps indexed by Heading; north decreases the row.
var headingDeltas = [...]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func (h Heading) Valid() bool { return h <= West }

// Turn rotates 90° clockwise.
func (h Heading) Turn() Heading { return (h + 1) % 4 }

// Degrees returns 0, 90, 180 or 270.
func (h Heading) Degrees() int { return int(h) * 90 }

// Delta is the one-cell step in this heading.
func (h Heading) Delta() Position { return headingDeltas[h%4] }

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("heading(%d)", uint8(h))
	}
	return headingNames[h]
}

// HeadingFromMarker maps a guard marker rune (^ > v <) to its heading.
func HeadingFromMarker(r rune) (Heading, bool) {
	switch r {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}

// Marker is the inverse of HeadingFromMarker.
func (h Heading) Marker() rune {
	return [...]rune{'^', '>', 'v', '<'}[h%4]
}
