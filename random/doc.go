// Package random provides the randomization primitives used across lvwalk:
// uniform integer and real draws, uniform pick, in-place shuffle, k-of-n
// sampling and probability-weighted pick.
//
// What:
//
//   - Source wraps a *math/rand.Rand owned by the caller. There is no
//     package-level generator; every operation takes the Source explicitly.
//   - Pick, Shuffle, ChooseGroup and WeightedPick are generic over the element
//     type and work on plain slices.
//   - ValidateDistribution is an opt-in fail-fast check for probability tables.
//
// Determinism:
//
//   - New(seed) is reproducible: same seed ⇒ same draws on every platform.
//   - New(0), and a nil *Source handed to Pick, Shuffle, ChooseGroup or
//     WeightedPick, resolve to a fixed default seed, so a forgotten source
//     never silently becomes time-seeded. Methods called on a nil *Source
//     do the same, starting a fresh default stream on every call.
//   - NewEntropy() is the only non-deterministic constructor.
//
// Concurrency:
//
//   - A Source is NOT goroutine-safe. Use Derive to give each worker its own
//     independent stream instead of sharing one generator.
//
// Fairness:
//
//   - Shuffle swaps position i with j ∈ [i, n) for i = 0..n-2. Drawing j from
//     [0, n) instead would bias the result; all n! permutations are equally
//     likely only with the [i, n) range.
//   - ChooseGroup applies the same rule to the first k positions of an index
//     array, so every k-subset is equally likely.
//
// WeightedPick edge case:
//
//	WeightedPick scans the weights in order, subtracting each from a uniform
//	r ∈ [0,1) until r ≤ 0. Weights summing to less than 1 fail with
//	ErrInvalidDistribution whenever r exceeds the sum. Weights summing to
//	MORE than 1 are accepted, and the trailing elements receive less mass
//	than their weights say (possibly none). Call ValidateDistribution first
//	when that must be rejected.
//
// Complexity:
//
//   - Pick, UniformReal, Intn, Between: O(1).
//   - Shuffle: O(n) time, O(1) extra space.
//   - ChooseGroup: O(n) time and space (index array).
//   - WeightedPick, ValidateDistribution: O(n).
package random
