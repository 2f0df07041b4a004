package dictionary

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ReadWordList reads a dictionary file into memory, one word per line, and
// returns the raw lines. Normalization is left to the consumers (the solver
// and the Index) so both see the same input. An unreadable file is a real
// error, distinct from a dictionary that simply yields no solutions.
func ReadWordList(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}

	log.Debugf("Read %d words from %s", len(words), path)
	return words, nil
}
