package anagram

import (
	"fmt"
	"strings"
	"unicode"
)

// AlphabetSize is the closed letter domain the engine operates over.
const AlphabetSize = 26

// LetterCounts is a multiset of lowercase ASCII letters, one count per slot.
// It is the unit of letter accounting during the search: counts are
// decremented as letters are consumed and must be restored exactly on every
// backtrack step.
type LetterCounts [AlphabetSize]int

// letterIndex maps a lowercase ASCII letter to its slot, or -1.
func letterIndex(r rune) int {
	if r >= 'a' && r <= 'z' {
		return int(r - 'a')
	}
	return -1
}

// indexLetter is the inverse of letterIndex.
func indexLetter(i int) byte {
	return byte('a' + i)
}

// PhraseCounts builds a LetterCounts from a phrase, counting letters
// case-insensitively and skipping whitespace. Any other rune (digits,
// punctuation, letters outside a-z) fails construction.
func PhraseCounts(phrase string) (LetterCounts, error) {
	var counts LetterCounts
	for _, r := range phrase {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsLetter(r):
			idx := letterIndex(unicode.ToLower(r))
			if idx < 0 {
				return LetterCounts{}, fmt.Errorf("non-ASCII letter in phrase: %q", r)
			}
			counts[idx]++
		default:
			return LetterCounts{}, fmt.Errorf("invalid character in phrase: %q", r)
		}
	}
	return counts, nil
}

// WordCounts builds a LetterCounts from an already normalized word or
// pattern, where every byte is a lowercase letter.
func WordCounts(word string) LetterCounts {
	var counts LetterCounts
	for i := 0; i < len(word); i++ {
		counts[word[i]-'a']++
	}
	return counts
}

// Total returns the number of letters in the multiset.
func (c *LetterCounts) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

// IsEmpty reports whether every count is zero.
func (c *LetterCounts) IsEmpty() bool {
	for _, n := range c {
		if n != 0 {
			return false
		}
	}
	return true
}

// Get returns the count for a letter, 0 for anything outside a-z.
func (c *LetterCounts) Get(r rune) int {
	idx := letterIndex(r)
	if idx < 0 {
		return 0
	}
	return c[idx]
}

// CanSubtract reports whether other fits inside c slot by slot.
func (c *LetterCounts) CanSubtract(other *LetterCounts) bool {
	for i := 0; i < AlphabetSize; i++ {
		if c[i] < other[i] {
			return false
		}
	}
	return true
}

// Subtract removes other from c. Callers must check CanSubtract first.
func (c *LetterCounts) Subtract(other *LetterCounts) error {
	if !c.CanSubtract(other) {
		return fmt.Errorf("cannot subtract, insufficient letters")
	}
	for i := 0; i < AlphabetSize; i++ {
		c[i] -= other[i]
	}
	return nil
}

// Add merges other into c.
func (c *LetterCounts) Add(other *LetterCounts) {
	for i := 0; i < AlphabetSize; i++ {
		c[i] += other[i]
	}
}

// take consumes one instance of slot i. The search only descends into trie
// children with a positive remaining count, so an underflow here is a
// programming defect, not a recoverable condition.
func (c *LetterCounts) take(i int) {
	if c[i] == 0 {
		panic(fmt.Sprintf("anagram: letter %q consumed with zero remaining", indexLetter(i)))
	}
	c[i]--
}

// put returns one instance of slot i.
func (c *LetterCounts) put(i int) {
	c[i]++
}

// NormalizeWord trims a word, lowercases it and strips everything outside
// a-z. Unlike phrase parsing this never fails: invalid runes are dropped.
func NormalizeWord(word string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(word) {
		r = unicode.ToLower(r)
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
