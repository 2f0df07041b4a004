/*
Package server implements msgpack IPC for the anagram engine.

The server provides a minimal interface for multiword anagram queries and
dictionary management using msgpack serialization over stdin/stdout, so host
applications (editors, notebooks, other processes) can embed the engine
without linking Go code.

# IPC

The protocol is request/response: clients send one structured message via
stdin and read one response from stdout. Every message carries an ID and an
action; the remaining fields depend on the action.

A solve request:

	{"id": "req_001", "action": "solve", "phrase": "listen silent",
	 "constraints": {"max_words": 2, "timeout_seconds": 1.5}}

The server responds with ordered solutions and timing in microseconds:

	{"id": "req_001", "sols": [["enlist", "silent"], ...], "count": 12, "t": 840}

Dictionary management:

	{"id": "dict_001", "action": "add_word", "word": "cromulent"}
	{"id": "dict_002", "action": "load_path", "path": "/usr/share/dict/words"}
	{"id": "dict_003", "action": "dict_info"}
	{"id": "dict_004", "action": "lookup", "prefix": "cro", "limit": 10}

Solve constraints left unset fall back to the configured solver defaults;
max_solutions is always clamped to the configured cap. An unparseable phrase
or an empty dictionary yields an empty solution list, not an error — errors
are reserved for malformed requests and dictionary I/O failures.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`

	// solve
	Phrase      string            `msgpack:"phrase,omitempty"`
	Constraints *SolveConstraints `msgpack:"constraints,omitempty"`

	// add_word / load_words / load_path
	Word  string   `msgpack:"word,omitempty"`
	Words []string `msgpack:"words,omitempty"`
	Path  string   `msgpack:"path,omitempty"`

	// lookup
	Prefix string `msgpack:"prefix,omitempty"`
	Limit  int    `msgpack:"limit,omitempty"`
}

// SolveConstraints mirrors anagram.Constraints in wire form. Letter sets are
// strings of letters; must_start_with counts repeated letters ("nn" = at
// least two words starting with n is expressed as {"n": 2}).
type SolveConstraints struct {
	MustStartWith        map[string]int `msgpack:"must_start_with,omitempty"`
	CanOnlyEverStartWith string         `msgpack:"can_only_ever_start_with,omitempty"`
	MustNotStartWith     string         `msgpack:"must_not_start_with,omitempty"`
	MaxWords             int            `msgpack:"max_words,omitempty"`
	MinWordLength        int            `msgpack:"min_word_length,omitempty"`
	TimeoutSeconds       *float64       `msgpack:"timeout_seconds,omitempty"`
	MaxSolutions         int            `msgpack:"max_solutions,omitempty"`
	Patterns             []string       `msgpack:"patterns,omitempty"`
}

// SolveResponse carries the ordered solutions for a solve request.
type SolveResponse struct {
	ID        string     `msgpack:"id"`
	Solutions [][]string `msgpack:"sols"`
	Count     int        `msgpack:"count"`
	TimeTaken int64      `msgpack:"t"` // microseconds
}

// DictResponse answers dictionary management actions.
type DictResponse struct {
	ID         string   `msgpack:"id"`
	Status     string   `msgpack:"status"`
	WordCount  int      `msgpack:"word_count,omitempty"`
	MinWordLen int      `msgpack:"min_word_len,omitempty"`
	MaxWordLen int      `msgpack:"max_word_len,omitempty"`
	Words      []string `msgpack:"words,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
