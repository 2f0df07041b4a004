// Package anagram implements a multiword anagram engine: it partitions the
// letters of a phrase into dictionary words so that every letter is used
// exactly once, subject to optional start-letter, word-count, word-length,
// substring, time and result-count constraints.
//
// The engine is a single-threaded backtracking search over a prefix tree of
// normalized dictionary words. One Solve call blocks its caller for the
// whole search; the mutable search context (remaining letters, word path,
// pattern bits) is owned exclusively by the call stack and restored exactly
// on every return path, including cutoff-driven early returns.
package anagram

import (
	"sort"
	"strings"
	"time"
)

// Solver owns the dictionary index and answers anagram queries against it.
// Loading and solving must not be interleaved concurrently: the index is
// mutable during loads and read-only during a search.
type Solver struct {
	trie *Trie
}

// NewSolver returns a Solver with an empty dictionary.
func NewSolver() *Solver {
	return &Solver{trie: NewTrie()}
}

// LoadWords bulk-inserts a collection of words.
func (s *Solver) LoadWords(words []string) {
	for _, word := range words {
		s.trie.Insert(word)
	}
}

// LoadText inserts one word per line of raw text.
func (s *Solver) LoadText(text string) {
	// Equivalent of strings.Lines (Go 1.24+): each line keeps its
	// terminating newline; a final unterminated line is still yielded.
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i+1], text[i+1:]
		} else {
			text = ""
		}
		s.trie.Insert(line)
	}
}

// AddWord inserts a single word.
func (s *Solver) AddWord(word string) {
	s.trie.Insert(word)
}

// HasWord reports whether word is in the dictionary, post-normalization.
func (s *Solver) HasWord(word string) bool {
	return s.trie.Contains(word)
}

// Stats returns dictionary statistics.
func (s *Solver) Stats() map[string]int {
	return map[string]int{
		"words":        s.trie.Len(),
		"min_word_len": s.trie.MinWordLen(),
		"max_word_len": s.trie.MaxWordLen(),
	}
}

// search is the mutable state of one Solve call.
type search struct {
	trie     *Trie
	cons     *Constraints
	patterns []Pattern

	remaining LetterCounts
	path      []string
	word      []byte

	// satisfied[i] is flipped when a chosen word contains patterns[i] and
	// reverted when that word leaves the path.
	satisfied []bool

	start    time.Time
	deadline time.Time // zero when no budget is configured
	timedOut bool
	found    int

	// solutions maps the canonical (sorted, NUL-joined) form to the words.
	solutions map[string][]string
}

// Solve returns every partition of the phrase's letters into dictionary
// words that meets the constraints, deduplicated and ordered by word count
// ascending, shortest-word length descending, then lexicographically.
//
// It fails soft: an unparseable phrase, an empty phrase, or an empty
// dictionary all yield an empty result rather than an error.
func (s *Solver) Solve(phrase string, cons Constraints) [][]string {
	target, err := PhraseCounts(phrase)
	if err != nil {
		return nil
	}
	if target.IsEmpty() || s.trie.MinWordLen() == 0 {
		return nil
	}

	st := &search{
		trie:      s.trie,
		cons:      &cons,
		patterns:  NewPatterns(cons.Patterns),
		remaining: target,
		start:     time.Now(),
		solutions: make(map[string][]string),
	}
	if len(st.patterns) > 0 {
		st.satisfied = make([]bool, len(st.patterns))
	}
	if cons.Timeout != nil {
		st.deadline = st.start.Add(*cons.Timeout)
	}

	st.composePhrase()

	return st.ordered()
}

// cutoff is polled at the entry of every recursive call and after each
// explored branch. Cancellation is cooperative: the deadline check here
// bounds overrun by the cost of a single recursive step.
func (st *search) cutoff() bool {
	if st.timedOut {
		return true
	}
	if !st.deadline.IsZero() && time.Now().After(st.deadline) {
		st.timedOut = true
		return true
	}
	if st.cons.MaxSolutions > 0 && st.found >= st.cons.MaxSolutions {
		return true
	}
	return false
}

// composePhrase decides whether the partition built so far can be finalized
// or extended with another word.
func (st *search) composePhrase() {
	if st.cutoff() {
		return
	}

	// A branch is dead while an unsatisfied pattern can no longer be formed
	// from the remaining letters, or when nothing can satisfy it anymore.
	unsatisfied := false
	for i := range st.patterns {
		if st.satisfied[i] {
			continue
		}
		if !st.remaining.CanSubtract(&st.patterns[i].Counts) {
			return
		}
		unsatisfied = true
	}
	if unsatisfied {
		if st.remaining.IsEmpty() {
			return
		}
		if st.cons.MaxWords > 0 && len(st.path) >= st.cons.MaxWords {
			return
		}
	}

	if st.cons.MaxWords > 0 && len(st.path) > st.cons.MaxWords {
		return
	}

	if st.remaining.IsEmpty() {
		if len(st.path) > 0 {
			st.finalize()
		}
		return
	}

	if st.remaining.Total() < st.trie.MinWordLen() {
		return
	}
	if st.cons.MaxWords > 0 && len(st.path) == st.cons.MaxWords {
		return
	}

	st.extendWord(&st.trie.root)
}

// finalize validates a complete partition and records it if new.
func (st *search) finalize() {
	if st.cons.MaxWords > 0 && len(st.path) > st.cons.MaxWords {
		return
	}
	if len(st.cons.MustStartWith) > 0 {
		starts := make(map[rune]int, len(st.path))
		for _, word := range st.path {
			starts[rune(word[0])]++
		}
		for r, need := range st.cons.MustStartWith {
			if starts[r] < need {
				return
			}
		}
	}
	for i := range st.patterns {
		if !st.satisfied[i] {
			return
		}
	}

	canonical := make([]string, len(st.path))
	copy(canonical, st.path)
	sort.Strings(canonical)

	key := strings.Join(canonical, "\x00")
	if _, dup := st.solutions[key]; dup {
		return
	}
	st.solutions[key] = canonical
	st.found++
}

// extendWord walks the trie depth-first, constrained by the remaining
// letters, to pick the next word of the partition.
func (st *search) extendWord(node *trieNode) {
	if st.cutoff() {
		return
	}

	if node.terminal && len(st.word) > 0 &&
		(st.cons.MinWordLength == 0 || len(st.word) >= st.cons.MinWordLength) {
		word := string(st.word)

		var flipped []int
		for i := range st.patterns {
			if !st.satisfied[i] && st.patterns[i].MatchesWord(word) {
				st.satisfied[i] = true
				flipped = append(flipped, i)
			}
		}

		st.path = append(st.path, word)
		st.composePhrase()
		st.path = st.path[:len(st.path)-1]

		for _, i := range flipped {
			st.satisfied[i] = false
		}

		if st.cutoff() {
			return
		}
	}

	if len(st.word) > st.trie.MaxWordLen() || len(st.word) > st.remaining.Total() {
		return
	}

	for i := 0; i < AlphabetSize; i++ {
		child := node.children[i]
		if child == nil || st.remaining[i] == 0 {
			continue
		}
		if len(st.word) == 0 && !st.cons.allowsStart(rune(indexLetter(i))) {
			continue
		}

		st.remaining.take(i)
		st.word = append(st.word, indexLetter(i))

		st.extendWord(child)

		st.word = st.word[:len(st.word)-1]
		st.remaining.put(i)

		if st.cutoff() {
			return
		}
	}
}

// ordered converts the dedup set into the final sorted result: fewer words
// first, then longer shortest-words, then lexicographic on the canonical
// word sequence.
func (st *search) ordered() [][]string {
	if len(st.solutions) == 0 {
		return nil
	}
	out := make([][]string, 0, len(st.solutions))
	for _, words := range st.solutions {
		out = append(out, words)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		if sa, sb := shortestLen(a), shortestLen(b); sa != sb {
			return sa > sb
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}

func shortestLen(words []string) int {
	shortest := 0
	for i, w := range words {
		if i == 0 || len(w) < shortest {
			shortest = len(w)
		}
	}
	return shortest
}
