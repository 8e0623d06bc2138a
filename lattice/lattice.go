package lattice

import (
	"fmt"
	"math"
)

// New constructs a width×height Lattice.
// Returns ErrInvalidDimensions if either side is ≤ 0 or the cell count overflows int.
// Complexity: O(1).
func New(width, height int) (*Lattice, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("lattice.New: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("lattice.New: %dx%d overflows: %w", width, height, ErrInvalidDimensions)
	}

	return &Lattice{Width: width, Height: height}, nil
}

// Size returns the number of cells, Width×Height.
func (l *Lattice) Size() int {
	return l.Width * l.Height
}

// InBounds reports whether (x,y) lies on the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Contains reports whether p lies on the lattice.
func (l *Lattice) Contains(p Point) bool {
	return l.InBounds(p.X, p.Y)
}

// Index maps p to its row-major index y*Width + x. p must be in bounds.
// Complexity: O(1).
func (l *Lattice) Index(p Point) int {
	return p.Y*l.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) Point {
	return Point{X: idx % l.Width, Y: idx / l.Width}
}

// Neighbors appends to buf[:0] the axis-aligned neighbors of p that lie on
// the lattice, in the order (x-1,y), (x+1,y), (x,y-1), (x,y+1), and returns it.
// Passing a reused buffer keeps the walk loop allocation-free.
// Complexity: O(1).
func (l *Lattice) Neighbors(p Point, buf []Point) []Point {
	buf = buf[:0]
	for _, d := range axisOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if !l.InBounds(nx, ny) {
			continue
		}
		buf = append(buf, Point{X: nx, Y: ny})
	}

	return buf
}
