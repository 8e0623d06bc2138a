package walk

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/lattice"
)

const (
	methodValidate = "Validate"
	methodRender   = "Render"
)

// Validate checks that w is a self-avoiding walk on a width×height lattice:
// non-empty, every point in bounds, no repeats, unit steps between
// consecutive points. The first violation found is returned.
//
// Complexity: O(W×H + L).
func Validate(w Walk, width, height int) error {
	lat, err := lattice.New(width, height)
	if err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if len(w) == 0 {
		return fmt.Errorf("%s: %w", methodValidate, ErrEmptyWalk)
	}

	seen := lattice.NewVisitedSet(lat)
	for i, p := range w {
		if !lat.Contains(p) {
			return fmt.Errorf("%s: w[%d]=%v: %w", methodValidate, i, p, ErrOutOfBounds)
		}
		if !seen.Visit(p) {
			return fmt.Errorf("%s: w[%d]=%v: %w", methodValidate, i, p, ErrRevisit)
		}
		if i > 0 && w[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("%s: w[%d]=%v → w[%d]=%v: %w", methodValidate, i-1, w[i-1], i, p, ErrNotAdjacent)
		}
	}

	return nil
}
