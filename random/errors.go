package random

import "errors"

// Sentinel errors for random operations. Callers branch with errors.Is;
// operations attach context with %w.
var (
	// ErrEmptyInput indicates a selection was requested from an empty sequence.
	ErrEmptyInput = errors.New("random: empty input")

	// ErrInvalidRange indicates an empty or inverted numeric range (max < min, n ≤ 0).
	ErrInvalidRange = errors.New("random: invalid range")

	// ErrNegativeCount indicates ChooseGroup was asked for fewer than zero elements.
	ErrNegativeCount = errors.New("random: negative count")

	// ErrInvalidDistribution indicates a malformed probability table: length
	// mismatch, a negative weight, or weights that do not cover [0,1).
	ErrInvalidDistribution = errors.New("random: invalid distribution")
)
