package password

import (
	"errors"
	"fmt"
)

// Standard character classes.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Specials  = `~!@#$%^&*():;[]{}<>,.?/\|`
)

var (
	// ErrInvalidLength indicates MinLength < 0 or MaxLength < MinLength.
	ErrInvalidLength = errors.New("password: invalid length range")

	// ErrUnsatisfiable indicates the policy cannot produce a string: a required
	// class has no characters, filler is needed but nothing is allowed, or
	// more classes are required than MaxLength permits.
	ErrUnsatisfiable = errors.New("password: unsatisfiable constraint")
)

// Rule controls one character class.
type Rule struct {
	Allow   bool // class feeds the filler pool
	Require bool // at least one character of the class is forced in
}

// Policy describes the strings Generate may produce.
type Policy struct {
	MinLength, MaxLength int

	Lowercase Rule
	Uppercase Rule
	Digit     Rule
	Special   Rule
	Other     Rule

	// OtherChars is the character set of the Other class. May contain any runes.
	OtherChars string
}

// Defaults for DefaultPolicy.
const (
	defaultMinLength = 12
	defaultMaxLength = 16
)

// DefaultPolicy returns a 12–16 character policy with the four standard
// classes allowed and required, and no Other set.
func DefaultPolicy() Policy {
	all := Rule{Allow: true, Require: true}

	return Policy{
		MinLength: defaultMinLength,
		MaxLength: defaultMaxLength,
		Lowercase: all,
		Uppercase: all,
		Digit:     all,
		Special:   all,
	}
}

// class pairs a Rule with its characters.
type class struct {
	name  string
	rule  Rule
	chars []rune
}

// classes lists the policy's classes in the order required characters are drawn.
func (p Policy) classes() []class {
	return []class{
		{"lowercase", p.Lowercase, []rune(Lowercase)},
		{"uppercase", p.Uppercase, []rune(Uppercase)},
		{"digit", p.Digit, []rune(Digits)},
		{"special", p.Special, []rune(Specials)},
		{"other", p.Other, []rune(p.OtherChars)},
	}
}

// pool concatenates the characters of every allowed class.
func (p Policy) pool() []rune {
	var out []rune
	for _, c := range p.classes() {
		if c.rule.Allow {
			out = append(out, c.chars...)
		}
	}

	return out
}

// required counts the classes with Require set.
func (p Policy) required() int {
	n := 0
	for _, c := range p.classes() {
		if c.rule.Require {
			n++
		}
	}

	return n
}

// Validate reports the first reason the policy can never be satisfied.
// A nil result means every length Generate may draw is achievable.
func (p Policy) Validate() error {
	if p.MinLength < 0 || p.MaxLength < p.MinLength {
		return fmt.Errorf("Validate: [%d, %d]: %w", p.MinLength, p.MaxLength, ErrInvalidLength)
	}
	for _, c := range p.classes() {
		if c.rule.Require && len(c.chars) == 0 {
			return fmt.Errorf("Validate: %s required but empty: %w", c.name, ErrUnsatisfiable)
		}
	}
	req := p.required()
	if req > p.MaxLength {
		return fmt.Errorf("Validate: %d required classes exceed max length %d: %w",
			req, p.MaxLength, ErrUnsatisfiable)
	}
	if len(p.pool()) == 0 && p.MinLength > req {
		return fmt.Errorf("Validate: no allowed characters for filler: %w", ErrUnsatisfiable)
	}

	return nil
}
