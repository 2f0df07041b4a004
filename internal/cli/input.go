// Package cli handles interactive phrase input for testing and exploring
// dictionaries without a host application attached.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/anagramserve/internal/utils"
	"github.com/bastiangx/anagramserve/pkg/anagram"
	"github.com/bastiangx/anagramserve/pkg/dictionary"
)

// InputHandler processes phrases from stdin and prints their multiword
// anagrams. The constraints are fixed at startup from flags; every line read
// is solved against them.
type InputHandler struct {
	solver     *anagram.Solver
	index      *dictionary.Index
	cons       anagram.Constraints
	maxPrinted int
	noFilter   bool
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(solver *anagram.Solver, index *dictionary.Index, cons anagram.Constraints, maxPrinted int, noFilter bool) *InputHandler {
	return &InputHandler{
		solver:     solver,
		index:      index,
		cons:       cons,
		maxPrinted: maxPrinted,
		noFilter:   noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes the
// trimmed phrase to handleInput(). A line starting with "?" is a dictionary
// prefix lookup instead of a solve. Loop terminates on stdin error/EOF.
func (h *InputHandler) Start() error {
	log.Print("anagramserve CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a phrase and press Enter to see its anagrams, ?prefix to search the dictionary (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "?"); ok {
			h.handleLookup(strings.TrimSpace(rest))
			continue
		}
		h.handleInput(line)
	}
}

// handleInput solves a single phrase and prints the ordered solutions.
func (h *InputHandler) handleInput(phrase string) {
	// The engine returns an empty result for unparseable phrases; warn here
	// so interactive users can tell that apart from "no anagram exists".
	if !h.noFilter && !utils.IsValidPhrase(phrase) {
		log.Warnf("Phrase contains characters outside letters and spaces: '%s'", phrase)
		return
	}

	start := time.Now()
	solutions := h.solver.Solve(phrase, h.cons)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for phrase '%s'", elapsed, phrase)

	if len(solutions) == 0 {
		log.Warnf("No anagrams found for phrase: '%s'", phrase)
		return
	}

	log.Printf("Found %d anagrams for phrase '%s':", len(solutions), phrase)
	for i, solution := range solutions {
		if h.maxPrinted > 0 && i >= h.maxPrinted {
			log.Printf("... and %d more", len(solutions)-i)
			break
		}
		clWords := fmt.Sprintf("\033[38;5;75m%s\033[0m", strings.Join(solution, " "))
		log.Printf("%3d. %s", i+1, clWords)
	}
}

// handleLookup lists dictionary words sharing a prefix.
func (h *InputHandler) handleLookup(prefix string) {
	words := h.index.WordsWithPrefix(prefix, h.maxPrinted)
	if len(words) == 0 {
		log.Warnf("No dictionary words with prefix '%s'", prefix)
		return
	}
	log.Printf("%d dictionary words with prefix '%s':", len(words), prefix)
	for _, word := range words {
		log.Printf("  %s", word)
	}
}
