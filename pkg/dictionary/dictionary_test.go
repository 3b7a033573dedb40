package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDeduplicates(t *testing.T) {
	dict := New([]string{"cat", "dog", "cat", "bird", "dog", ""})

	words, ok := dict.Words()
	if !ok {
		t.Fatal("Fresh dictionary should report a good supply")
	}
	expected := []string{"cat", "dog", "bird"}
	if strings.Join(words, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, words)
	}
	if dict.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", dict.Len())
	}
}

func TestNewFailed(t *testing.T) {
	dict := NewFailed()
	words, ok := dict.Words()
	if ok {
		t.Error("Failed supply should report ok=false")
	}
	if len(words) != 0 {
		t.Errorf("Failed supply should be empty, got %v", words)
	}
}

func TestContains(t *testing.T) {
	dict := New([]string{"cat", "cats", "dog"})

	testCases := []struct {
		word        string
		expected    bool
		description string
	}{
		{"cat", true, "Plain entry"},
		{"cats", true, "Entry that extends another"},
		{"ca", false, "Prefix of an entry is not an entry"},
		{"bird", false, "Absent word"},
		{"", false, "Empty string"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := dict.Contains(tc.word); got != tc.expected {
				t.Errorf("Contains(%q): expected %v, got %v", tc.word, tc.expected, got)
			}
		})
	}
}

func TestCountPrefix(t *testing.T) {
	dict := New([]string{"cat", "cats", "catalog", "dog"})

	if got := dict.CountPrefix("cat"); got != 3 {
		t.Errorf("Expected 3 entries under 'cat', got %d", got)
	}
	if got := dict.CountPrefix("dog"); got != 1 {
		t.Errorf("Expected 1 entry under 'dog', got %d", got)
	}
	if got := dict.CountPrefix("zz"); got != 0 {
		t.Errorf("Expected 0 entries under 'zz', got %d", got)
	}
}

func TestParseWords(t *testing.T) {
	input := "cat DOG bi-rd fish2\nant\n  BEE  \n"
	words := ParseWords(strings.NewReader(input))

	// bi-rd and fish2 are not purely a-z after folding and get dropped
	expected := []string{"cat", "dog", "ant", "bee"}
	if strings.Join(words, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, words)
	}
}

func TestLoadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("apple\nbanana\nAPPLE\nch3rry\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dict, err := LoadTextFile(path)
	if err != nil {
		t.Fatalf("LoadTextFile failed: %v", err)
	}

	words, _ := dict.Words()
	expected := []string{"apple", "banana"}
	if strings.Join(words, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, words)
	}
}

func TestLoadTextFileMissing(t *testing.T) {
	if _, err := LoadTextFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
