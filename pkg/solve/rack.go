package solve

import "strings"

// Wildcard is the rack symbol that stands in for exactly one arbitrary letter.
const Wildcard = '*'

// Normalize reduces raw query text to a rack pattern: every character outside
// ASCII letters and '*' is dropped, letters are folded to lowercase.
// Empty input yields an empty pattern.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		case c == Wildcard:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Rack is the letter multiset and blank count derived from a normalized
// pattern. Order of pattern characters is irrelevant, matching is
// anagram-style coverage, never positional.
type Rack struct {
	counts [26]int
	blanks int
}

// NewRack builds a Rack from a normalized pattern.
// Characters outside a-z and '*' are ignored, callers should Normalize first.
func NewRack(pattern string) Rack {
	var r Rack
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == Wildcard:
			r.blanks++
		case c >= 'a' && c <= 'z':
			r.counts[c-'a']++
		}
	}
	return r
}

// Blanks returns the number of wildcard slots on the rack.
func (r Rack) Blanks() int {
	return r.blanks
}

// Letters returns the total count of literal letters on the rack.
func (r Rack) Letters() int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}

// Covers reports whether word can be formed entirely from the rack:
// each word letter consumes a matching rack letter when one remains,
// otherwise a blank. Every rack slot is usable at most once. The rack
// does not have to be exhausted.
//
// Greedy exact-letter-first consumption is safe here: blanks are fungible,
// so any valid assignment can be reordered into this one.
func (r Rack) Covers(word string) bool {
	counts := r.counts
	blanks := r.blanks
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		if counts[c-'a'] > 0 {
			counts[c-'a']--
			continue
		}
		if blanks > 0 {
			blanks--
			continue
		}
		return false
	}
	return true
}
