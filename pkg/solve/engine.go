package solve

import (
	"github.com/charmbracelet/log"

	"github.com/wordrack/wordrack/pkg/dictionary"
)

// Engine binds the pure solving functions to a dictionary handle. The
// dictionary is injected once at construction; the engine itself holds no
// other state and is safe to call concurrently.
type Engine struct {
	supplier dictionary.Supplier
}

// NewEngine creates an Engine over an already initialized supplier.
func NewEngine(supplier dictionary.Supplier) *Engine {
	return &Engine{supplier: supplier}
}

// Solve runs the coverage match over the supplied dictionary.
// A failed supply is treated as an empty dictionary.
func (e *Engine) Solve(raw string, b Bounds) []string {
	words, ok := e.supplier.Words()
	if !ok {
		log.Warn("Dictionary supply failed, solving against empty word list")
	}
	return Solve(raw, words, b)
}

// Hint derives a partial reveal of the first match over the supplied dictionary.
func (e *Engine) Hint(raw string, b Bounds) string {
	words, ok := e.supplier.Words()
	if !ok {
		log.Warn("Dictionary supply failed, solving against empty word list")
	}
	return Hint(raw, words, b)
}
