// Package dictionary handles word-list ingestion and lookup for the anagram
// engine: reading word files from disk and a patricia-trie index used for
// membership and prefix queries by the server and CLI surfaces.
package dictionary

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/anagramserve/pkg/anagram"
)

// errEnough stops a subtree visit once the caller's limit is reached.
var errEnough = errors.New("enough words collected")

// Index is a thread-safe lookup structure over normalized dictionary words.
// It exists alongside the solver's own search trie: the solver needs
// per-letter child traversal, while introspection (does the dictionary hold
// this word, what words share this prefix) fits a patricia trie.
type Index struct {
	mu    sync.RWMutex
	trie  *patricia.Trie
	total int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// Add inserts the normalized form of word. Words that normalize to empty
// are discarded, mirroring solver insertion.
func (ix *Index) Add(word string) {
	normalized := anagram.NormalizeWord(word)
	if normalized == "" {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.trie.Insert(patricia.Prefix(normalized), true) {
		ix.total++
	}
}

// Contains reports whether the normalized form of word is indexed.
func (ix *Index) Contains(word string) bool {
	normalized := anagram.NormalizeWord(word)
	if normalized == "" {
		return false
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.trie.Get(patricia.Prefix(normalized)) != nil
}

// WordsWithPrefix returns up to limit indexed words sharing prefix, in trie
// order. A limit of 0 means no cap.
func (ix *Index) WordsWithPrefix(prefix string, limit int) []string {
	normalized := anagram.NormalizeWord(prefix)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var words []string
	err := ix.trie.VisitSubtree(patricia.Prefix(normalized), func(p patricia.Prefix, item patricia.Item) error {
		if limit > 0 && len(words) >= limit {
			return errEnough
		}
		words = append(words, string(p))
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		log.Errorf("Visiting index subtree: %v", err)
	}
	return words
}

// Len returns the number of distinct indexed words.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.total
}
