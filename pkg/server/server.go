package server

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/anagramserve/internal/logger"
	"github.com/bastiangx/anagramserve/pkg/anagram"
	"github.com/bastiangx/anagramserve/pkg/config"
	"github.com/bastiangx/anagramserve/pkg/dictionary"
)

// Server handles the IPC for anagram queries.
type Server struct {
	solver *anagram.Solver
	index  *dictionary.Index
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	log    *log.Logger
}

// NewServer creates a new anagram server using stdin/stdout for IPC
func NewServer(solver *anagram.Solver, index *dictionary.Index, cfg *config.Config) *Server {
	return newServerWithIO(solver, index, cfg, os.Stdin, os.Stdout)
}

func newServerWithIO(solver *anagram.Solver, index *dictionary.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		solver: solver,
		index:  index,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		log:    logger.New("ipc"),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a decoded request by action.
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "solve":
		s.handleSolve(request)
	case "add_word":
		s.handleAddWord(request)
	case "load_words":
		s.handleLoadWords(request)
	case "load_path":
		s.handleLoadPath(request)
	case "dict_info":
		s.handleDictInfo(request)
	case "lookup":
		s.handleLookup(request)
	case "health":
		s.sendResponse(map[string]string{"id": request.ID, "status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleSolve runs one anagram query. Constraints the request leaves unset
// fall back to the configured solver defaults; max_solutions is clamped to
// the configured cap so one request cannot hold the process indefinitely.
func (s *Server) handleSolve(request Request) {
	phrase := request.Phrase
	if phrase == "" {
		s.sendError(request.ID, "Missing 'phrase' parameter", 400)
		s.log.Debug("Phrase is empty in request")
		return
	}
	if max := s.cfg.Server.MaxPhraseLen; max > 0 && len(phrase) > max {
		s.sendError(request.ID, fmt.Sprintf("Phrase exceeds maximum length of %d characters", max), 400)
		s.log.Debug("Phrase is too long in request")
		return
	}

	cons := s.buildConstraints(request.Constraints)

	start := time.Now()
	solutions := s.solver.Solve(phrase, cons)
	elapsed := time.Since(start)

	s.log.Debugf("Took [ %v ] for phrase '%s' (%d solutions)", elapsed, phrase, len(solutions))

	s.sendResponse(SolveResponse{
		ID:        request.ID,
		Solutions: solutions,
		Count:     len(solutions),
		TimeTaken: elapsed.Microseconds(),
	})
}

// buildConstraints converts wire constraints to engine constraints and
// applies configured defaults and caps.
func (s *Server) buildConstraints(wire *SolveConstraints) anagram.Constraints {
	var cons anagram.Constraints
	if wire != nil {
		cons = anagram.Constraints{
			MustStartWith:        letterCounts(wire.MustStartWith),
			CanOnlyEverStartWith: anagram.ParseLetterSet(wire.CanOnlyEverStartWith),
			MustNotStartWith:     anagram.ParseLetterSet(wire.MustNotStartWith),
			MaxWords:             wire.MaxWords,
			MinWordLength:        wire.MinWordLength,
			MaxSolutions:         wire.MaxSolutions,
			Patterns:             wire.Patterns,
		}
		if wire.TimeoutSeconds != nil {
			timeout := time.Duration(*wire.TimeoutSeconds * float64(time.Second))
			cons.Timeout = &timeout
		}
	}

	defaults := s.cfg.Solver
	if cons.Timeout == nil && defaults.DefaultTimeoutSeconds > 0 {
		timeout := time.Duration(defaults.DefaultTimeoutSeconds * float64(time.Second))
		cons.Timeout = &timeout
	}
	if cons.MaxWords == 0 {
		cons.MaxWords = defaults.DefaultMaxWords
	}
	if cons.MaxSolutions == 0 {
		cons.MaxSolutions = defaults.DefaultMaxSolutions
	}
	if limit := s.cfg.Server.MaxSolutionsCap; limit > 0 && (cons.MaxSolutions == 0 || cons.MaxSolutions > limit) {
		cons.MaxSolutions = limit
	}
	return cons
}

// letterCounts converts a wire letter->count map; only the first rune of
// each key names the letter.
func letterCounts(m map[string]int) map[rune]int {
	if len(m) == 0 {
		return nil
	}
	counts := make(map[rune]int, len(m))
	for key, n := range m {
		for _, r := range key {
			counts[unicode.ToLower(r)] += n
			break
		}
	}
	return counts
}

func (s *Server) handleAddWord(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'word' parameter", 400)
		return
	}
	s.addWord(request.Word)
	s.sendDictInfo(request.ID)
}

func (s *Server) handleLoadWords(request Request) {
	if len(request.Words) == 0 {
		s.sendError(request.ID, "Missing 'words' parameter", 400)
		return
	}
	for _, word := range request.Words {
		s.addWord(word)
	}
	s.sendDictInfo(request.ID)
}

func (s *Server) handleLoadPath(request Request) {
	if request.Path == "" {
		s.sendError(request.ID, "Missing 'path' parameter", 400)
		return
	}
	words, err := dictionary.ReadWordList(request.Path)
	if err != nil {
		s.sendError(request.ID, err.Error(), 500)
		s.log.Errorf("Loading dictionary: %v", err)
		return
	}
	for _, word := range words {
		s.addWord(word)
	}
	s.log.Debugf("Loaded %d words from %s", len(words), request.Path)
	s.sendDictInfo(request.ID)
}

func (s *Server) handleDictInfo(request Request) {
	s.sendDictInfo(request.ID)
}

func (s *Server) handleLookup(request Request) {
	limit := request.Limit
	if limit <= 0 || (s.cfg.Server.LookupLimit > 0 && limit > s.cfg.Server.LookupLimit) {
		limit = s.cfg.Server.LookupLimit
	}
	words := s.index.WordsWithPrefix(request.Prefix, limit)
	s.sendResponse(DictResponse{
		ID:     request.ID,
		Status: "ok",
		Words:  words,
	})
}

// addWord feeds both the search trie and the lookup index so they stay in
// agreement about dictionary membership.
func (s *Server) addWord(word string) {
	s.solver.AddWord(word)
	s.index.Add(word)
}

func (s *Server) sendDictInfo(id string) {
	stats := s.solver.Stats()
	s.sendResponse(DictResponse{
		ID:         id,
		Status:     "ok",
		WordCount:  stats["words"],
		MinWordLen: stats["min_word_len"],
		MaxWordLen: stats["max_word_len"],
	})
}

// sendResponse encodes a response onto the wire.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
