package anagram

import "testing"

func TestNewPatterns(t *testing.T) {
	patterns := NewPatterns([]string{"CT", " ing ", "1 2 3", ""})

	if len(patterns) != 2 {
		t.Fatalf("got %d patterns, want 2 (empty ones dropped)", len(patterns))
	}
	if patterns[0].Text != "ct" || patterns[1].Text != "ing" {
		t.Errorf("normalized texts = %q, %q; want ct, ing", patterns[0].Text, patterns[1].Text)
	}
	if got := patterns[0].Counts.Total(); got != 2 {
		t.Errorf("pattern counts total = %d, want 2", got)
	}
}

// The literal match and the multiset feasibility check are two different
// containment notions and must stay that way: "cat" can spare the letters of
// "tac" but does not contain it as a substring.
func TestPatternDualContainment(t *testing.T) {
	patterns := NewPatterns([]string{"tac"})
	p := patterns[0]

	word := "cat"
	wordLetters := WordCounts(word)
	if !wordLetters.CanSubtract(&p.Counts) {
		t.Error("multiset feasibility: cat should cover the letters of tac")
	}
	if p.MatchesWord(word) {
		t.Error("literal match: cat must not be reported as containing tac")
	}
	if !p.MatchesWord("stack") {
		t.Error("literal match: stack contains tac")
	}
}
