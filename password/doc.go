// Package password builds random strings that satisfy character-class rules.
//
// A Policy names five classes (lowercase, uppercase, digit, special, and a
// caller-supplied "other" set), each with a Rule:
//
//   - Allow:   the class contributes to the pool used for filler characters.
//   - Require: at least one character of the class appears in the result,
//     even if the class is not allowed as filler.
//
// Generate picks a length in [MinLength, MaxLength], draws one character per
// required class, fills the rest from the allowed pool and shuffles the
// result so required characters are not clustered at the front.
//
// All randomness comes from the *random.Source passed in.
package password
