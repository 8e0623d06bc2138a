// Package lvwalk generates random self-avoiding walks on a bounded 2-D
// lattice, on top of a small set of injectable randomization primitives.
//
// What is inside?
//
//	random/   Source (owned, seedable RNG), Pick, Shuffle, ChooseGroup, WeightedPick
//	lattice/  Point, Lattice bounds, 4-neighbor enumeration, VisitedSet
//	walk/     Generate (greedy self-avoiding walk), Validate, Render
//	password/ Policy-driven random strings with per-class allow/require rules
//	cmd/saw   demo: prints a walk as "X = <x>, Y = <y>" lines
//
// Design rules:
//
//   - No package-level random generator. Every random draw comes from a
//     *random.Source the caller owns, so tests seed once and get
//     reproducible results.
//   - Sentinel errors per package, wrapped with context; branch with errors.Is.
//   - Libraries never log; only cmd/saw does.
//
// Quick ASCII example (walk on 4×3, S = start, E = dead end):
//
//	S##.
//	.E#.
//	....
//
//	go get github.com/katalvlaran/lvwalk
package lvwalk
