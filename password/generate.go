package password

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/random"
)

// Generate returns a random string satisfying p.
//
// Behavior:
//  1. Validate p (ErrInvalidLength, ErrUnsatisfiable).
//  2. Draw the length uniformly in [MinLength, MaxLength]; a draw below
//     required, the number of classes with Require set, is raised to it.
//  3. Append one character from each required class.
//  4. Append characters from the allowed pool up to the length.
//  5. Shuffle.
//
// Complexity: O(L + |pool|).
func Generate(src *random.Source, p Policy) (string, error) {
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("Generate: %w", err)
	}
	if src == nil {
		src = random.New(0)
	}

	n, err := src.Between(p.MinLength, p.MaxLength)
	if err != nil {
		return "", fmt.Errorf("Generate: %w", err)
	}
	n = max(n, p.required())

	out := make([]rune, 0, n)
	for _, c := range p.classes() {
		if !c.rule.Require {
			continue
		}
		r, err := random.Pick(src, c.chars)
		if err != nil {
			return "", fmt.Errorf("Generate: %s: %w", c.name, ErrUnsatisfiable)
		}
		out = append(out, r)
	}

	pool := p.pool()
	if len(out) < n && len(pool) == 0 {
		return "", fmt.Errorf("Generate: %d filler characters needed, none allowed: %w",
			n-len(out), ErrUnsatisfiable)
	}
	for len(out) < n {
		r, _ := random.Pick(src, pool)
		out = append(out, r)
	}

	// Keep required characters from always leading.
	random.Shuffle(src, out)

	return string(out), nil
}
