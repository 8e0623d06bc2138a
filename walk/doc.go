// Package walk generates random self-avoiding walks on a bounded 2-D lattice.
//
// What
//
//   - Generate starts at a random cell of a W×H lattice and repeatedly steps
//     to a uniformly chosen unvisited axis neighbor.
//   - The walk is greedy: it stops at the first dead end (no unvisited
//     neighbor) and never backtracks. A dead end is the normal outcome, not
//     an error, and coverage of the lattice is typically far from complete.
//   - Validate checks the walk invariants; Render draws a walk as ASCII.
//
// Invariants of every Walk returned by Generate
//
//   - Non-empty: the start cell is always present.
//   - Every point lies in [0,W)×[0,H).
//   - No point repeats.
//   - Consecutive points are at Manhattan distance exactly 1.
//   - Len() ≤ W×H.
//
// Randomness
//
//	All draws come from a *random.Source. WithSource and WithSeed make runs
//	reproducible; without either, each call seeds its own Source from system
//	entropy, so concurrent calls never share a generator.
//
// Options
//
//   - WithSource(src): draw from a caller-owned Source.
//   - WithSeed(seed):  draw from random.New(seed).
//   - WithStart(p):    begin at p instead of a random cell.
//   - WithOnStep(fn):  called with (step, point) for every point appended,
//     step 0 being the start.
//
// Complexity
//
//   - Time:   O(W×H) setup for the visited set + O(L) steps, L = walk length.
//   - Memory: O(W×H) visited flags + O(L) for the walk.
//
// Usage
//
//	w, err := walk.Generate(300, 300, walk.WithSeed(7))
//	if err != nil {
//		// ErrInvalidDimensions, ErrStartOutOfBounds or ErrOptionViolation
//	}
//	for _, p := range w {
//		fmt.Printf("X = %d, Y = %d\n", p.X, p.Y)
//	}
package walk
