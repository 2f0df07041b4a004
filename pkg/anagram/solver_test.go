package anagram

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func newTestSolver(words ...string) *Solver {
	s := NewSolver()
	s.LoadWords(words)
	return s
}

func TestSolveSingleWordAnagrams(t *testing.T) {
	s := newTestSolver("cat", "act", "tac")

	got := s.Solve("cat", Constraints{})
	want := [][]string{{"act"}, {"cat"}, {"tac"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Solve(cat) = %v, want %v", got, want)
	}
}

func TestSolveMultiword(t *testing.T) {
	s := newTestSolver("cat", "a")

	got := s.Solve("acta", Constraints{MaxWords: 2})
	want := [][]string{{"a", "cat"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Solve(acta, maxWords=2) = %v, want %v", got, want)
	}
}

func TestSolveSoftFailures(t *testing.T) {
	testCases := []struct {
		solver      *Solver
		phrase      string
		description string
	}{
		{newTestSolver("cat"), "123", "phrase with no alphabetic characters"},
		{newTestSolver("cat"), "c@t", "phrase with invalid character"},
		{newTestSolver("cat"), "", "empty phrase"},
		{newTestSolver("cat"), "   ", "whitespace-only phrase"},
		{newTestSolver(), "cat", "empty dictionary"},
	}

	for _, tc := range testCases {
		if got := tc.solver.Solve(tc.phrase, Constraints{}); len(got) != 0 {
			t.Errorf("%s: Solve(%q) = %v, want empty", tc.description, tc.phrase, got)
		}
	}
}

func TestSolveStartLetterConstraints(t *testing.T) {
	testCases := []struct {
		cons        Constraints
		want        [][]string
		description string
	}{
		{
			Constraints{CanOnlyEverStartWith: ParseLetterSet("ct")},
			[][]string{{"cat"}, {"tac"}},
			"allow-list filters first letters",
		},
		{
			Constraints{MustNotStartWith: ParseLetterSet("c")},
			[][]string{{"act"}, {"tac"}},
			"deny-list filters first letters",
		},
		{
			Constraints{MustNotStartWith: ParseLetterSet("act")},
			nil,
			"deny-list covering every start yields nothing",
		},
	}

	for _, tc := range testCases {
		s := newTestSolver("cat", "act", "tac")
		got := s.Solve("cat", tc.cons)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.description, got, tc.want)
		}
	}
}

func TestSolveMustStartWithAggregate(t *testing.T) {
	s := newTestSolver("on", "no", "won", "own", "now")

	// Two-word splits of "ownon": require two words starting with n.
	got := s.Solve("ownon", Constraints{
		MaxWords:      2,
		MustStartWith: ParseLetterCounts("nn"),
	})
	want := [][]string{{"no", "now"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mustStartWith nn: got %v, want %v", got, want)
	}

	// Impossible aggregate: three words starting with n in a two word bound.
	got = s.Solve("ownon", Constraints{
		MaxWords:      2,
		MustStartWith: ParseLetterCounts("nnn"),
	})
	if len(got) != 0 {
		t.Errorf("mustStartWith nnn: got %v, want empty", got)
	}
}

func TestSolveWordBounds(t *testing.T) {
	s := newTestSolver("a", "ab", "abc", "b", "bc", "c", "ca")

	// No bounds: every partition of "abc" into dictionary words.
	got := s.Solve("abc", Constraints{})
	want := [][]string{
		{"abc"},
		{"a", "bc"},
		{"ab", "c"},
		{"b", "ca"},
		{"a", "b", "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unbounded: got %v, want %v", got, want)
	}

	got = s.Solve("abc", Constraints{MaxWords: 2})
	for _, sol := range got {
		if len(sol) > 2 {
			t.Errorf("maxWords=2 violated by %v", sol)
		}
	}
	if len(got) != 4 {
		t.Errorf("maxWords=2: got %d solutions, want 4", len(got))
	}

	got = s.Solve("abc", Constraints{MinWordLength: 2})
	for _, sol := range got {
		for _, w := range sol {
			if len(w) < 2 {
				t.Errorf("minWordLength=2 violated by %q in %v", w, sol)
			}
		}
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], []string{"abc"}) {
		t.Errorf("minWordLength=2: got %v, want [[abc]]", got)
	}
}

func TestSolveMaxSolutions(t *testing.T) {
	s := newTestSolver("cat", "act", "tac")

	got := s.Solve("cat", Constraints{MaxSolutions: 2})
	if len(got) != 2 {
		t.Errorf("maxSolutions=2: got %d solutions, want 2", len(got))
	}
}

func TestSolvePatterns(t *testing.T) {
	testCases := []struct {
		patterns    []string
		want        [][]string
		description string
	}{
		{[]string{"ct"}, [][]string{{"a", "cat"}}, "pattern contained in a chosen word"},
		{[]string{"xy"}, nil, "pattern no word can contain"},
		{[]string{"tac"}, nil, "anagram of a word does not satisfy a literal pattern"},
	}

	for _, tc := range testCases {
		s := newTestSolver("cat", "a")
		got := s.Solve("acta", Constraints{MaxWords: 2, Patterns: tc.patterns})
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.description, got, tc.want)
		}
	}
}

func TestSolveZeroTimeoutReturnsPromptly(t *testing.T) {
	s := NewSolver()
	// A dense synthetic dictionary makes the unbounded search expensive.
	letters := "abcdefgh"
	for _, a := range letters {
		for _, b := range letters {
			s.AddWord(string([]rune{a, b}))
			for _, c := range letters {
				s.AddWord(string([]rune{a, b, c}))
			}
		}
	}

	zero := time.Duration(0)
	start := time.Now()
	got := s.Solve("abcdefgh abcdefgh abcdefgh", Constraints{Timeout: &zero})
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Errorf("zero timeout took %v, want a prompt return", elapsed)
	}
	// Partial (possibly empty) results are fine; they must still be unique.
	assertUniqueSolutions(t, got)
}

func TestSolveProperties(t *testing.T) {
	words := []string{"listen", "silent", "enlist", "tin", "lens", "net", "lit", "sin", "isle", "nest", "ten"}
	s := newTestSolver(words...)
	phrase := "listen silent"

	target, err := PhraseCounts(phrase)
	if err != nil {
		t.Fatalf("PhraseCounts: %v", err)
	}

	got := s.Solve(phrase, Constraints{})
	if len(got) == 0 {
		t.Fatal("expected solutions for a phrase built from dictionary words")
	}

	for _, sol := range got {
		// Letter conservation: pooled letters equal the phrase's multiset.
		var pooled LetterCounts
		for _, w := range sol {
			wc := WordCounts(w)
			pooled.Add(&wc)
		}
		if pooled != target {
			t.Errorf("letter conservation violated by %v", sol)
		}

		// Membership: every word is in the dictionary.
		for _, w := range sol {
			if !s.HasWord(w) {
				t.Errorf("solution word %q not in dictionary", w)
			}
		}
	}

	assertUniqueSolutions(t, got)
	assertOrdered(t, got)
}

func TestSolveIsRepeatable(t *testing.T) {
	// Strict stack discipline means a solver is reusable: repeated queries
	// against the same dictionary must agree exactly.
	s := newTestSolver("cat", "act", "tac", "a", "at", "ta", "c")

	first := s.Solve("acta", Constraints{})
	for i := 0; i < 3; i++ {
		again := s.Solve("acta", Constraints{})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i+1, again, first)
		}
	}
}

func TestSolverStats(t *testing.T) {
	s := newTestSolver("cat", "banana", "ox")

	stats := s.Stats()
	if stats["words"] != 3 || stats["min_word_len"] != 2 || stats["max_word_len"] != 6 {
		t.Errorf("Stats() = %v", stats)
	}
}

func assertUniqueSolutions(t *testing.T, solutions [][]string) {
	t.Helper()
	seen := make(map[string]bool, len(solutions))
	for _, sol := range solutions {
		key := fmt.Sprintf("%q", sol)
		if seen[key] {
			t.Errorf("duplicate solution %v", sol)
		}
		seen[key] = true
	}
}

func assertOrdered(t *testing.T, solutions [][]string) {
	t.Helper()
	for i := 1; i < len(solutions); i++ {
		a, b := solutions[i-1], solutions[i]
		if len(a) != len(b) {
			if len(a) > len(b) {
				t.Errorf("ordering: %v (%d words) before %v (%d words)", a, len(a), b, len(b))
			}
			continue
		}
		sa, sb := shortestLen(a), shortestLen(b)
		if sa != sb {
			if sa < sb {
				t.Errorf("ordering: shortest word %d before %d at %v, %v", sa, sb, a, b)
			}
			continue
		}
		for k := range a {
			if a[k] != b[k] {
				if a[k] > b[k] {
					t.Errorf("ordering: %v lexicographically after %v", a, b)
				}
				break
			}
		}
	}
}
