package anagram

import (
	"time"
	"unicode"
)

// Constraints configures one Solve call. Every field is optional; zero
// values mean "unconstrained", except Timeout where nil means no budget and
// a pointer to zero means an immediately exhausted budget.
type Constraints struct {
	// MustStartWith maps a letter to the minimum number of words across the
	// whole solution that must start with it.
	MustStartWith map[rune]int

	// CanOnlyEverStartWith restricts every word's first letter to this set
	// when non-empty.
	CanOnlyEverStartWith map[rune]bool

	// MustNotStartWith forbids these first letters for every word.
	MustNotStartWith map[rune]bool

	// MaxWords bounds the number of words per solution.
	MaxWords int

	// MinWordLength bounds every word's length from below.
	MinWordLength int

	// Timeout is the wall-clock search budget.
	Timeout *time.Duration

	// MaxSolutions caps the number of distinct solutions collected.
	MaxSolutions int

	// Patterns are literal substrings; each must appear inside some word of
	// every returned solution.
	Patterns []string
}

// allowsStart applies the per-word first-letter rules.
func (c *Constraints) allowsStart(r rune) bool {
	if c.MustNotStartWith != nil && c.MustNotStartWith[r] {
		return false
	}
	if len(c.CanOnlyEverStartWith) > 0 && !c.CanOnlyEverStartWith[r] {
		return false
	}
	return true
}

// ParseLetterSet lowercases a string of letters into a set, for wiring
// string-typed start-letter options from CLIs and IPC requests.
func ParseLetterSet(s string) map[rune]bool {
	if s == "" {
		return nil
	}
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[unicode.ToLower(r)] = true
	}
	return set
}

// ParseLetterCounts counts letter occurrences in a string, so "aab" means
// at least two words starting with a and one with b.
func ParseLetterCounts(s string) map[rune]int {
	if s == "" {
		return nil
	}
	counts := make(map[rune]int, len(s))
	for _, r := range s {
		counts[unicode.ToLower(r)]++
	}
	return counts
}
