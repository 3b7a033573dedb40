package solve

// NoHint is returned by Hint when nothing in the dictionary matches.
const NoHint = "No hints available"

// hintPrefixLen is how many characters of the first match a hint reveals.
const hintPrefixLen = 2

// Bounds is an inclusive word length range. Zero on either side means that
// side is unbounded. Min > Max is not an error, it simply admits nothing.
type Bounds struct {
	Min int
	Max int
}

// Unbounded admits every word length.
var Unbounded = Bounds{}

// Admits reports whether a word of the given length falls inside the bounds.
func (b Bounds) Admits(length int) bool {
	if b.Min > 0 && length < b.Min {
		return false
	}
	if b.Max > 0 && length > b.Max {
		return false
	}
	return true
}

// Solve returns every dictionary word that passes the length bounds and can
// be covered by the rack derived from raw, preserving dictionary order.
// Empty raw input short-circuits to an empty result.
func Solve(raw string, words []string, b Bounds) []string {
	if raw == "" {
		return nil
	}
	rack := NewRack(Normalize(raw))

	var matches []string
	for _, w := range words {
		if !b.Admits(len(w)) {
			continue
		}
		if rack.Covers(w) {
			matches = append(matches, w)
		}
	}
	return matches
}

// Hint reveals the first two characters of the first match plus an ellipsis,
// never the full word. Words shorter than the prefix are revealed whole,
// truncation clamps to what is available.
func Hint(raw string, words []string, b Bounds) string {
	matches := Solve(raw, words, b)
	if len(matches) == 0 {
		return NoHint
	}
	first := matches[0]
	if len(first) > hintPrefixLen {
		first = first[:hintPrefixLen]
	}
	return first + "..."
}
