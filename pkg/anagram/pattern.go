package anagram

import "strings"

// Pattern is a required-substring constraint in its preprocessed form: the
// normalized literal text plus its letter multiset. The two fields serve two
// deliberately different checks. The multiset is a feasibility bound: while
// a pattern is unsatisfied, the remaining letters must still be able to form
// it. Satisfaction itself requires the literal text to appear inside a
// chosen word, not merely an anagram of it.
type Pattern struct {
	Text   string
	Counts LetterCounts
}

// NewPatterns preprocesses raw pattern strings. Each is normalized the same
// way dictionary words are (patterns match against normalized words, so the
// normalizations must agree); patterns that normalize to empty are dropped.
func NewPatterns(raw []string) []Pattern {
	patterns := make([]Pattern, 0, len(raw))
	for _, s := range raw {
		text := NormalizeWord(s)
		if text == "" {
			continue
		}
		patterns = append(patterns, Pattern{
			Text:   text,
			Counts: WordCounts(text),
		})
	}
	return patterns
}

// MatchesWord reports whether the pattern occurs literally inside word.
func (p *Pattern) MatchesWord(word string) bool {
	return strings.Contains(word, p.Text)
}
