// Package solve is the core, matching rack patterns with wildcard blanks
// against dictionary words by letter coverage and filtering on length.
package solve

// ISolver defines the interface for rack solving engines
type ISolver interface {
	// Solve returns every matching word for raw pattern text, in dictionary order
	Solve(raw string, b Bounds) []string

	// Hint returns a partial reveal of the first match, or NoHint
	Hint(raw string, b Bounds) string
}
