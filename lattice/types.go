// Package lattice defines the Point value type, the Lattice and sentinel errors.
package lattice

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a non-positive width or height.
var ErrInvalidDimensions = errors.New("lattice: width and height must be positive")

// Point is a lattice coordinate. It is a plain value; two Points are the same
// cell iff their coordinates are equal.
type Point struct {
	X, Y int
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// axisOffsets are the 4 axis-aligned moves in enumeration order:
// west, east, north, south.
var axisOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Lattice is an implicit Width×Height grid. It is immutable once built.
type Lattice struct {
	Width, Height int
}
