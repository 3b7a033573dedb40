// Package cli handles cmd line input and solving for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordrack/wordrack/internal/logger"
	"github.com/wordrack/wordrack/internal/utils"
	"github.com/wordrack/wordrack/pkg/solve"
)

// InputHandler processes user input from stdin, solving rack patterns
// against the loaded dictionary. Lines have the form:
//
//	pattern [min] [max]
//
// where min and max are optional length bounds. Malformed bound tokens are
// treated as absent rather than rejected.
type InputHandler struct {
	engine       solve.ISolver
	log          *log.Logger
	defaultMin   int
	defaultMax   int
	resultLimit  int
	requestCount int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine solve.ISolver, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:      engine,
		log:         logger.NewWithConfig("cli", log.GetLevel(), false, false, log.TextFormatter),
		defaultMin:  minLength,
		defaultMax:  maxLength,
		resultLimit: limit,
		noFilter:    noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("wordrack CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("enter a rack pattern ('*' for blanks), optionally followed by min and max length (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single query line and prints the matches plus a hint.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	fields := strings.Fields(line)
	pattern := fields[0]
	b := solve.Bounds{Min: h.defaultMin, Max: h.defaultMax}
	if len(fields) > 1 {
		b.Min = parseBound(fields[1], h.defaultMin)
	}
	if len(fields) > 2 {
		b.Max = parseBound(fields[2], h.defaultMax)
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidRack(pattern) {
			h.log.Warnf("No results found for pattern: '%s' (filtered out)", pattern)
			return
		}
	} else {
		h.log.Debug("Input filtering disabled - raw pattern passed through")
	}

	start := time.Now()
	h.log.Debug("Processing request for", "pattern", pattern, "min", b.Min, "max", b.Max)

	matches := h.engine.Solve(pattern, b)

	elapsed := time.Since(start)
	h.log.Debugf("Took [ %v ] for pattern '%s'", elapsed, pattern)

	if len(matches) == 0 {
		h.log.Warnf("No matches found for pattern: '%s'", pattern)
		h.log.Printf("hint: %s", h.engine.Hint(pattern, b))
		return
	}

	shown := matches
	if h.resultLimit > 0 && len(shown) > h.resultLimit {
		shown = shown[:h.resultLimit]
	}

	h.log.Printf("Found %d matches for pattern '%s':", len(matches), pattern)
	for i, w := range shown {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		h.log.Printf("%2d. %-40s (len: %2d)", i+1, clWord, len(w))
	}
	if len(shown) < len(matches) {
		h.log.Printf("... and %s more", utils.FormatWithCommas(len(matches)-len(shown)))
	}
	h.log.Printf("hint: %s", h.engine.Hint(pattern, b))
}

// parseBound parses a length bound token. Non-numeric or negative tokens
// mean the bound is absent, falling back to the handler default.
func parseBound(tok string, fallback int) int {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
