package solve

import (
	"fmt"
	"strings"
	"testing"
)

// joined compares match slices without caring about nil vs empty
func joined(words []string) string {
	return strings.Join(words, ",")
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"cat", "cat", "Plain lowercase"},
		{"CaT", "cat", "Mixed case folds down"},
		{"c*t", "c*t", "Wildcard preserved"},
		{"c a t", "cat", "Whitespace stripped"},
		{"c-a_t!", "cat", "Punctuation stripped"},
		{"c4t2", "ct", "Digits stripped"},
		{"***", "***", "Only wildcards"},
		{"", "", "Empty input"},
		{"123!?", "", "Nothing usable"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
		})
	}
}

func TestCovers(t *testing.T) {
	testCases := []struct {
		pattern     string
		word        string
		expected    bool
		description string
	}{
		{"cat", "cat", true, "Exact anagram"},
		{"tac", "cat", true, "Order irrelevant"},
		{"cat", "at", true, "Subset match, rack not exhausted"},
		{"cat", "cats", false, "Word needs letter the rack lacks"},
		{"c*t", "cat", true, "Blank covers the missing letter"},
		{"c*t", "cot", true, "Blank is fungible"},
		{"c*t", "cast", false, "Four letters exceed two letters plus one blank"},
		{"**", "at", true, "Blanks only"},
		{"**", "ate", false, "Word longer than blank budget"},
		{"aab", "aa", true, "Duplicate letters consumed separately"},
		{"ab", "aa", false, "Each rack letter usable at most once"},
		{"a*", "aa", true, "Blank covers the second duplicate"},
		{"", "a", false, "Empty rack covers nothing"},
		{"", "", true, "Empty rack covers the empty word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			rack := NewRack(Normalize(tc.pattern))
			if got := rack.Covers(tc.word); got != tc.expected {
				t.Errorf("pattern %q vs word %q: expected %v, got %v", tc.pattern, tc.word, tc.expected, got)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	testCases := []struct {
		pattern     string
		words       []string
		bounds      Bounds
		expected    []string
		description string
	}{
		{
			pattern:     "c*t",
			words:       []string{"cat", "cot", "cut", "cast", "cent"},
			bounds:      Unbounded,
			expected:    []string{"cat", "cot", "cut"},
			description: "One blank covers one arbitrary letter",
		},
		{
			pattern:     "aet",
			words:       []string{"ate", "eat", "tea", "eta", "tear"},
			bounds:      Unbounded,
			expected:    []string{"ate", "eat", "tea", "eta"},
			description: "No blanks means strict submultiset",
		},
		{
			pattern:     "a*",
			words:       []string{"a", "an", "at", "and"},
			bounds:      Bounds{Min: 2, Max: 2},
			expected:    []string{"an", "at"},
			description: "Length filter trims both ends",
		},
		{
			pattern:     "cat",
			words:       []string{},
			bounds:      Bounds{Min: 1, Max: 10},
			expected:    nil,
			description: "Empty dictionary",
		},
		{
			pattern:     "",
			words:       []string{"cat", "dog"},
			bounds:      Unbounded,
			expected:    nil,
			description: "Empty pattern short-circuits",
		},
		{
			pattern:     "!!!",
			words:       []string{"cat", "dog"},
			bounds:      Unbounded,
			expected:    nil,
			description: "Pattern normalizing to nothing matches nothing",
		},
		{
			pattern:     "***",
			words:       []string{"a", "an", "ant", "ants"},
			bounds:      Unbounded,
			expected:    []string{"a", "an", "ant"},
			description: "Blanks-only rack matches every word up to its budget",
		},
		{
			pattern:     "dog",
			words:       []string{"dog", "god", "good"},
			bounds:      Bounds{Min: 5, Max: 3},
			expected:    nil,
			description: "Inverted bounds silently admit nothing",
		},
		{
			pattern:     "listen",
			words:       []string{"silent", "enlist", "tinsel", "listens"},
			bounds:      Unbounded,
			expected:    []string{"silent", "enlist", "tinsel"},
			description: "Full anagrams in dictionary order",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Solve(tc.pattern, tc.words, tc.bounds)
			if joined(got) != joined(tc.expected) {
				t.Errorf("Solve(%q): expected %v, got %v", tc.pattern, tc.expected, got)
			}
		})
	}
}

// calling Solve twice with identical arguments yields identical output
func TestSolveIdempotent(t *testing.T) {
	words := []string{"cat", "cot", "act", "tack", "cast"}
	first := Solve("c*at", words, Bounds{Min: 3})
	second := Solve("c*at", words, Bounds{Min: 3})

	if joined(first) != joined(second) {
		t.Errorf("Repeated solve diverged: %v vs %v", first, second)
	}
}

// widening the length bounds never removes a previously matching word
func TestBoundsMonotonic(t *testing.T) {
	words := []string{"a", "an", "ant", "tan", "nan"}
	narrow := Solve("an*t", words, Bounds{Min: 2, Max: 3})
	wide := Solve("an*t", words, Bounds{})

	wideSet := make(map[string]bool)
	for _, w := range wide {
		wideSet[w] = true
	}
	for _, w := range narrow {
		if !wideSet[w] {
			t.Errorf("Word %q matched under narrow bounds but not wide", w)
		}
	}
	if len(wide) < len(narrow) {
		t.Errorf("Widening bounds shrank results: %d -> %d", len(narrow), len(wide))
	}
}

// adding blanks never removes a previously matching word
func TestWildcardMonotonic(t *testing.T) {
	words := []string{"cat", "cot", "coat", "cart", "chart"}
	base := Solve("cat", words, Unbounded)
	withBlank := Solve("cat*", words, Unbounded)
	withTwo := Solve("cat**", words, Unbounded)

	contains := func(haystack []string, needle string) bool {
		for _, w := range haystack {
			if w == needle {
				return true
			}
		}
		return false
	}

	for _, w := range base {
		if !contains(withBlank, w) {
			t.Errorf("Adding one blank dropped %q", w)
		}
	}
	for _, w := range withBlank {
		if !contains(withTwo, w) {
			t.Errorf("Adding a second blank dropped %q", w)
		}
	}
}

func TestBoundsAdmits(t *testing.T) {
	testCases := []struct {
		bounds      Bounds
		length      int
		expected    bool
		description string
	}{
		{Bounds{}, 1, true, "Unbounded admits everything"},
		{Bounds{Min: 2}, 1, false, "Below min"},
		{Bounds{Min: 2}, 2, true, "At min inclusive"},
		{Bounds{Max: 4}, 5, false, "Above max"},
		{Bounds{Max: 4}, 4, true, "At max inclusive"},
		{Bounds{Min: 3, Max: 3}, 3, true, "Exact length window"},
		{Bounds{Min: 5, Max: 3}, 4, false, "Inverted bounds admit nothing"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := tc.bounds.Admits(tc.length); got != tc.expected {
				t.Errorf("Bounds %+v with length %d: expected %v, got %v", tc.bounds, tc.length, tc.expected, got)
			}
		})
	}
}

func TestHint(t *testing.T) {
	testCases := []struct {
		pattern     string
		words       []string
		bounds      Bounds
		expected    string
		description string
	}{
		{"c*t", []string{"cat", "cot"}, Unbounded, "ca...", "Two letter prefix of first match"},
		{"ta", []string{"at"}, Unbounded, "at...", "Two letter word revealed whole"},
		{"a*", []string{"a", "an"}, Unbounded, "a...", "One letter word clamps, no panic"},
		{"cat", []string{}, Bounds{Min: 1, Max: 10}, NoHint, "Empty dictionary yields the sentinel"},
		{"", []string{"cat"}, Unbounded, NoHint, "Empty pattern yields the sentinel"},
		{"zzz", []string{"cat", "dog"}, Unbounded, NoHint, "No match yields the sentinel"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Hint(tc.pattern, tc.words, tc.bounds)
			if got != tc.expected {
				t.Errorf("Hint(%q): expected %q, got %q", tc.pattern, tc.expected, got)
			}
		})
	}
}

func TestRackCounts(t *testing.T) {
	rack := NewRack(Normalize("ab*ba*"))
	if rack.Blanks() != 2 {
		t.Errorf("Expected 2 blanks, got %d", rack.Blanks())
	}
	if rack.Letters() != 4 {
		t.Errorf("Expected 4 letters, got %d", rack.Letters())
	}
}

// 1000 words in dict, mixed pattern, should stay well under a millisecond
func BenchmarkSolve(b *testing.B) {
	words := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		words = append(words, fmt.Sprintf("word%c%c", 'a'+i%26, 'a'+(i/26)%26))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Solve("dro*w", words, Bounds{Min: 3, Max: 8})
	}
}
