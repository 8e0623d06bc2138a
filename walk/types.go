// Package walk provides options, result type and error definitions
// for self-avoiding walk generation.
package walk

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvwalk/lattice"
	"github.com/katalvlaran/lvwalk/random"
)

// Sentinel errors for walk generation and validation.
var (
	// ErrInvalidDimensions is returned for a non-positive lattice width or height.
	ErrInvalidDimensions = lattice.ErrInvalidDimensions

	// ErrStartOutOfBounds is returned when WithStart names a cell off the lattice.
	ErrStartOutOfBounds = errors.New("walk: start point out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrEmptyWalk is returned by Validate for a walk with no points.
	ErrEmptyWalk = errors.New("walk: empty walk")

	// ErrOutOfBounds is returned by Validate and Render for a point off the lattice.
	ErrOutOfBounds = errors.New("walk: point out of bounds")

	// ErrRevisit is returned by Validate when a point appears twice.
	ErrRevisit = errors.New("walk: point visited twice")

	// ErrNotAdjacent is returned by Validate when consecutive points are not unit steps apart.
	ErrNotAdjacent = errors.New("walk: consecutive points not adjacent")
)

// Walk is an ordered sequence of distinct, pairwise-adjacent lattice points.
type Walk []lattice.Point

// Len returns the number of points in the walk.
func (w Walk) Len() int { return len(w) }

// Start returns the first point. ok is false for an empty walk.
func (w Walk) Start() (p lattice.Point, ok bool) {
	if len(w) == 0 {
		return lattice.Point{}, false
	}

	return w[0], true
}

// End returns the last point (the dead end). ok is false for an empty walk.
func (w Walk) End() (p lattice.Point, ok bool) {
	if len(w) == 0 {
		return lattice.Point{}, false
	}

	return w[len(w)-1], true
}

// Coverage returns the fraction of a width×height lattice the walk visited,
// or 0 for non-positive dimensions.
func (w Walk) Coverage(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}

	return float64(len(w)) / (float64(width) * float64(height))
}

// Option configures Generate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Generate.
type Option func(*Options)

// Options holds the parameters and hooks of a single Generate call.
type Options struct {
	// Source supplies every random draw; nil means "seed from entropy".
	Source *random.Source

	// Start, if non-nil, fixes the first point of the walk.
	Start *lattice.Point

	// OnStep is called for each point appended, starting with step 0.
	OnStep func(step int, p lattice.Point)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no Source (entropy-seeded per call),
// a random start, and a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Source: nil,
		Start:  nil,
		OnStep: func(int, lattice.Point) {},
		err:    nil,
	}
}

// WithSource draws all randomness from src. A nil src is an option violation.
func WithSource(src *random.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("WithSource(nil): %w", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithSeed draws all randomness from random.New(seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = random.New(seed)
	}
}

// WithStart fixes the start point. Bounds are checked by Generate.
func WithStart(p lattice.Point) Option {
	return func(o *Options) {
		start := p
		o.Start = &start
	}
}

// WithOnStep installs a per-step hook. A nil fn is an option violation.
func WithOnStep(fn func(step int, p lattice.Point)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("WithOnStep(nil): %w", ErrOptionViolation)
			return
		}
		o.OnStep = fn
	}
}
