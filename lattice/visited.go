package lattice

// VisitedSet records which cells of a Lattice have been visited.
// Off-lattice points are treated as never visited and cannot be marked.
type VisitedSet struct {
	lat   *Lattice
	cells []bool
	count int
}

// NewVisitedSet returns an empty set over l.
// Complexity: O(W×H) time and memory.
func NewVisitedSet(l *Lattice) *VisitedSet {
	return &VisitedSet{lat: l, cells: make([]bool, l.Size())}
}

// Visit marks p and reports whether it was newly marked. It returns false
// for an already-visited point or a point off the lattice.
func (v *VisitedSet) Visit(p Point) bool {
	if !v.lat.Contains(p) {
		return false
	}
	i := v.lat.Index(p)
	if v.cells[i] {
		return false
	}
	v.cells[i] = true
	v.count++

	return true
}

// Visited reports whether p is on the lattice and marked.
func (v *VisitedSet) Visited(p Point) bool {
	return v.lat.Contains(p) && v.cells[v.lat.Index(p)]
}

// Len returns the number of marked cells.
func (v *VisitedSet) Len() int {
	return v.count
}
