package anagram

// trieNode is one node of the dictionary index. Children are a fixed
// 26-slot array rather than a map: the alphabet is closed and small, and the
// search iterates children on every frame.
type trieNode struct {
	children [AlphabetSize]*trieNode
	terminal bool
}

// Trie is the dictionary index: a prefix tree over normalized words with the
// global min/max word length tracked for pruning. It is built at load time
// and read-only during a search.
type Trie struct {
	root    trieNode
	words   int
	minLen  int
	maxLen  int
	lenInit bool
}

// NewTrie returns an empty dictionary index.
func NewTrie() *Trie {
	return &Trie{}
}

// Insert normalizes a word and adds it to the index. Words that normalize
// to the empty string are discarded silently.
func (t *Trie) Insert(word string) {
	normalized := NormalizeWord(word)
	if normalized == "" {
		return
	}

	n := len(normalized)
	if !t.lenInit || n < t.minLen {
		t.minLen = n
	}
	if n > t.maxLen {
		t.maxLen = n
	}
	t.lenInit = true

	node := &t.root
	for i := 0; i < n; i++ {
		idx := int(normalized[i] - 'a')
		if node.children[idx] == nil {
			node.children[idx] = &trieNode{}
		}
		node = node.children[idx]
	}
	if !node.terminal {
		node.terminal = true
		t.words++
	}
}

// Contains reports whether the normalized form of word is in the index.
func (t *Trie) Contains(word string) bool {
	normalized := NormalizeWord(word)
	if normalized == "" {
		return false
	}
	node := &t.root
	for i := 0; i < len(normalized); i++ {
		node = node.children[normalized[i]-'a']
		if node == nil {
			return false
		}
	}
	return node.terminal
}

// MinWordLen returns the shortest inserted word length, 0 when empty.
func (t *Trie) MinWordLen() int {
	if !t.lenInit {
		return 0
	}
	return t.minLen
}

// MaxWordLen returns the longest inserted word length, 0 when empty.
func (t *Trie) MaxWordLen() int {
	return t.maxLen
}

// Len returns the number of distinct words in the index.
func (t *Trie) Len() int {
	return t.words
}
