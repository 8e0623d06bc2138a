package walk

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/lattice"
	"github.com/katalvlaran/lvwalk/random"
)

const methodGenerate = "Generate"

// Generate returns one random self-avoiding walk on a width×height lattice.
//
// Behavior:
//  1. Validate dimensions (ErrInvalidDimensions) and options (ErrOptionViolation).
//  2. Start at WithStart's point (ErrStartOutOfBounds if off the lattice) or
//     at x ∈ [0,width), y ∈ [0,height) drawn independently.
//  3. From the current point, keep the axis neighbors that are on the
//     lattice and, of those, the ones not yet visited.
//  4. None left: stop and return the walk. Otherwise pick one uniformly,
//     append it, mark it visited and continue from it.
//
// The visited set grows by one per step, so the loop runs at most
// width×height times.
func Generate(width, height int, opts ...Option) (Walk, error) {
	lat, err := lattice.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, o.err)
	}

	src := o.Source
	if src == nil {
		src = random.NewEntropy()
	}

	var cur lattice.Point
	if o.Start != nil {
		if !lat.Contains(*o.Start) {
			return nil, fmt.Errorf("%s: start %v on %dx%d: %w",
				methodGenerate, *o.Start, width, height, ErrStartOutOfBounds)
		}
		cur = *o.Start
	} else {
		// width and height are positive here, so Intn cannot fail.
		cur.X, _ = src.Intn(width)
		cur.Y, _ = src.Intn(height)
	}

	visited := lattice.NewVisitedSet(lat)
	visited.Visit(cur)
	w := Walk{cur}
	o.OnStep(0, cur)

	var (
		candidates = make([]lattice.Point, 0, 4) // on-lattice neighbors
		free       = make([]lattice.Point, 0, 4) // unvisited subset
		next       lattice.Point
	)
	for {
		candidates = lat.Neighbors(cur, candidates)
		free = free[:0]
		for _, p := range candidates {
			if !visited.Visited(p) {
				free = append(free, p)
			}
		}

		// Dead end.
		if len(free) == 0 {
			break
		}

		next, _ = random.Pick(src, free)
		visited.Visit(next)
		w = append(w, next)
		cur = next
		o.OnStep(len(w)-1, cur)
	}

	return w, nil
}
