package random_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvwalk/random"
)

// ExampleShuffle shows that Shuffle only reorders: sorting the result
// restores the input.
func ExampleShuffle() {
	src := random.New(42)
	deck := []string{"A", "K", "Q", "J", "10"}
	random.Shuffle(src, deck)

	slices.Sort(deck)
	fmt.Println(deck)
	// Output:
	// [10 A J K Q]
}

// ExampleChooseGroup draws a 3-of-5 sample and a saturated 9-of-5 sample.
func ExampleChooseGroup() {
	src := random.New(42)
	crew := []string{"ada", "bob", "cy", "dee", "eve"}

	three, _ := random.ChooseGroup(src, crew, 3)
	all, _ := random.ChooseGroup(src, crew, 9)
	fmt.Println(len(three), len(all))
	// Output:
	// 3 5
}

// ExampleWeightedPick shows the under-sum failure: with weights summing to
// zero every draw exhausts the scan.
func ExampleWeightedPick() {
	src := random.New(42)
	_, err := random.WeightedPick(src, []string{"a", "b"}, []float64{0, 0})
	fmt.Println(errors.Is(err, random.ErrInvalidDistribution))

	v, _ := random.WeightedPick(src, []string{"a", "b"}, []float64{0, 1})
	fmt.Println(v)
	// Output:
	// true
	// b
}
