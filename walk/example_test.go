// File: walk/example_test.go
package walk_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/lattice"
	"github.com/katalvlaran/lvwalk/walk"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate walks a 4×1 corridor from its west end. With only one
// unvisited neighbor at every step the result does not depend on the seed.
func ExampleGenerate() {
	w, err := walk.Generate(4, 1, walk.WithSeed(42), walk.WithStart(lattice.Point{X: 0, Y: 0}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range w {
		fmt.Printf("X = %d, Y = %d\n", p.X, p.Y)
	}
	// Output:
	// X = 0, Y = 0
	// X = 1, Y = 0
	// X = 2, Y = 0
	// X = 3, Y = 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: Render
////////////////////////////////////////////////////////////////////////////////

// ExampleRender draws a hand-made walk that turns two corners.
func ExampleRender() {
	w := walk.Walk{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	if err := walk.Validate(w, 4, 3); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	s, _ := walk.Render(w, 4, 3)
	fmt.Print(s)
	// Output:
	// S##.
	// .E#.
	// ....
}
