package random

import (
	"fmt"
	"math"
)

// Method tags used as error prefixes.
const (
	methodPick         = "Pick"
	methodChooseGroup  = "ChooseGroup"
	methodWeightedPick = "WeightedPick"
	methodValidateDist = "ValidateDistribution"
)

// Pick returns one element of seq, each with probability 1/len(seq).
// Returns ErrEmptyInput if seq is empty.
//
// Complexity: O(1).
func Pick[T any](src *Source, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, fmt.Errorf("%s: %w", methodPick, ErrEmptyInput)
	}

	return seq[resolve(src).intn(len(seq))], nil
}

// Shuffle permutes seq in place, uniformly over all len(seq)! orderings.
// For each position i in 0..n-2 it swaps i with a later-or-equal j ∈ [i, n).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](src *Source, seq []T) {
	n := len(seq)
	if n <= 1 {
		return
	}
	r := resolve(src)

	var i, j int
	for i = 0; i < n-1; i++ {
		// Pick a later item to swap into position i.
		j = i + r.intn(n-i)
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// ChooseGroup returns k distinct elements of seq drawn without replacement.
// It partially shuffles an index array (first k positions, same [i, n) rule
// as Shuffle) and projects those indices onto seq, so seq is not modified.
//
// k > len(seq) saturates to len(seq). k < 0 returns ErrNegativeCount.
//
// Complexity: O(n) time and space.
func ChooseGroup[T any](src *Source, seq []T, k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodChooseGroup, k, ErrNegativeCount)
	}
	n := len(seq)
	if k > n {
		k = n
	}
	r := resolve(src)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var i, j int
	for i = 0; i < k; i++ {
		j = i + r.intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]T, k)
	for i = 0; i < k; i++ {
		out[i] = seq[idx[i]]
	}

	return out, nil
}

// WeightedPick returns values[i] with probability weights[i].
//
// It draws r ∈ [0,1) and subtracts weights in order until r ≤ 0. If the scan
// exhausts all weights first (they sum to less than 1), it returns
// ErrInvalidDistribution. Weights summing to more than 1 are not rejected;
// see the package documentation.
//
// Returns ErrEmptyInput for empty values and ErrInvalidDistribution for a
// length mismatch or a negative weight, both before any draw is made.
//
// Complexity: O(n).
func WeightedPick[T any](src *Source, values []T, weights []float64) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("%s: %w", methodWeightedPick, ErrEmptyInput)
	}
	if len(weights) != len(values) {
		return zero, fmt.Errorf("%s: %d values, %d weights: %w",
			methodWeightedPick, len(values), len(weights), ErrInvalidDistribution)
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return zero, fmt.Errorf("%s: weights[%d]=%g: %w",
				methodWeightedPick, i, w, ErrInvalidDistribution)
		}
	}

	p := resolve(src).Float64()
	for i, w := range weights {
		p -= w
		if p <= 0 {
			return values[i], nil
		}
	}

	return zero, fmt.Errorf("%s: probabilities do not add up to 1.0: %w",
		methodWeightedPick, ErrInvalidDistribution)
}

// DefaultTolerance is the sum tolerance suggested for ValidateDistribution.
const DefaultTolerance = 1e-9

// ValidateDistribution reports ErrInvalidDistribution unless every weight is
// non-negative and the weights sum to 1 within tol. Use it before
// WeightedPick when over-summing tables must be rejected too.
//
// Complexity: O(n).
func ValidateDistribution(weights []float64, tol float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("%s: %w", methodValidateDist, ErrEmptyInput)
	}
	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%s: weights[%d]=%g: %w", methodValidateDist, i, w, ErrInvalidDistribution)
		}
		sum += w
	}
	if math.Abs(sum-1) > tol {
		return fmt.Errorf("%s: sum=%g: %w", methodValidateDist, sum, ErrInvalidDistribution)
	}

	return nil
}
