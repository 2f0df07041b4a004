/*
Package main implements the multiword anagram server and CLI application.

AnagramServe partitions the letters of a phrase into dictionary words so that
every letter is used exactly once, subject to optional constraints: required
first letters, allow/deny lists for word starts, word-count and word-length
bounds, required substrings, a wall-clock budget and a result cap.

It can operate as a msgpack IPC server for integration with host
applications, or as an interactive CLI for exploring dictionaries.

# Usage

Start the server with a word list:

	anagramserve -dict /usr/share/dict/words

Run in CLI mode with constraints and debug logging:

	anagramserve -dict words.txt -c -max-words 3 -timeout 2 -d

In CLI mode every line read from stdin is solved against the startup
constraints; lines starting with "?" search the dictionary by prefix instead.

# Configuration

Runtime defaults are managed through a TOML file that supports solver,
server and CLI parameters:

	[solver]
	default_timeout_seconds = 10.0
	default_max_solutions = 500

	[server]
	max_phrase_len = 120
	max_solutions_cap = 5000

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. See pkg/server for
the message catalogue. A solve request names a phrase and optional
constraints; the response carries the ordered solutions and timing in
microseconds:

	{"id": "q1", "action": "solve", "phrase": "acta", "constraints": {"max_words": 2}}
	{"id": "q1", "sols": [["a", "cat"]], "count": 1, "t": 38}
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/anagramserve/internal/cli"
	"github.com/bastiangx/anagramserve/pkg/anagram"
	"github.com/bastiangx/anagramserve/pkg/config"
	"github.com/bastiangx/anagramserve/pkg/dictionary"
	"github.com/bastiangx/anagramserve/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "anagramserve"
	gh      = "https://github.com/bastiangx/anagramserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the packages together; the solving and serving logic lives in
// pkg/anagram and pkg/server.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	dictPath := flag.String("dict", "", "Path to a word list, one word per line")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	maxWords := flag.Int("max-words", 0, "Maximum words per solution (0 for unlimited)")
	minWordLen := flag.Int("min-len", 0, "Minimum length of every word (0 for unlimited)")
	maxSolutions := flag.Int("max-solutions", 0, "Cap on distinct solutions (0 uses the configured default)")
	timeoutSec := flag.Float64("timeout", -1, "Wall-clock budget in seconds (-1 uses the configured default, 0 exhausts immediately)")
	mustStart := flag.String("starts", "", "Required first letters across the solution, repeated for counts (e.g. 'nna')")
	onlyStart := flag.String("only-starts", "", "Every word must start with one of these letters")
	notStart := flag.String("not-starts", "", "No word may start with any of these letters")
	patterns := flag.String("patterns", "", "Comma-separated substrings each solution must contain in some word")
	noFilter := flag.Bool("no-filter", false, "Disable CLI phrase pre-filtering (unparseable phrases then show as empty results)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	solver := anagram.NewSolver()
	index := dictionary.NewIndex()

	if *dictPath != "" {
		words, err := dictionary.ReadWordList(*dictPath)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		solver.LoadWords(words)
		for _, word := range words {
			index.Add(word)
		}
		stats := solver.Stats()
		log.Debugf("Dictionary loaded: words=[%d], minLen=[%d], maxLen=[%d]",
			stats["words"], stats["min_word_len"], stats["max_word_len"])
	} else {
		log.Warn("No dictionary specified, starting with an empty word list")
	}

	if *cliMode {
		cons := anagram.Constraints{
			MustStartWith:        anagram.ParseLetterCounts(*mustStart),
			CanOnlyEverStartWith: anagram.ParseLetterSet(*onlyStart),
			MustNotStartWith:     anagram.ParseLetterSet(*notStart),
			MaxWords:             *maxWords,
			MinWordLength:        *minWordLen,
			MaxSolutions:         *maxSolutions,
		}
		if *patterns != "" {
			cons.Patterns = strings.Split(*patterns, ",")
		}
		if cons.MaxSolutions == 0 {
			cons.MaxSolutions = cfg.Solver.DefaultMaxSolutions
		}
		switch {
		case *timeoutSec >= 0:
			timeout := time.Duration(*timeoutSec * float64(time.Second))
			cons.Timeout = &timeout
		case cfg.Solver.DefaultTimeoutSeconds > 0:
			timeout := time.Duration(cfg.Solver.DefaultTimeoutSeconds * float64(time.Second))
			cons.Timeout = &timeout
		}

		handler := cli.NewInputHandler(solver, index, cons, cfg.CLI.MaxPrinted, *noFilter || cfg.CLI.DefaultNoFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI input handler error: %v", err)
		}
		return
	}

	srv := server.NewServer(solver, index, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ AnagramServe ] Multiword anagrams over your dictionary!")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
