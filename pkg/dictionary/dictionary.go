// Package dictionary supplies ordered word lists for the solver. Words come
// from plain text files, chunked binary files loaded lazily, or a one-time
// remote fetch. Entries are normalized to lowercase a-z and deduplicated,
// source order is preserved.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Supplier yields a finite ordered word list. The boolean reports whether
// supply succeeded; a failed supply yields an empty list, never an error.
type Supplier interface {
	Words() ([]string, bool)
}

// Dictionary is an immutable ordered word list with a trie index for
// membership and prefix lookups. The slice, not the trie, defines the
// order solver results come back in.
type Dictionary struct {
	words []string
	index *patricia.Trie
	ok    bool
}

// New builds a Dictionary from words already normalized to lowercase a-z.
// Duplicates are dropped, first occurrence wins and fixes the order.
func New(words []string) *Dictionary {
	d := &Dictionary{
		index: patricia.NewTrie(),
		ok:    true,
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if d.index.Insert(patricia.Prefix(w), len(d.words)) {
			d.words = append(d.words, w)
		}
	}
	return d
}

// NewFailed returns an empty dictionary flagged as a failed supply.
func NewFailed() *Dictionary {
	return &Dictionary{index: patricia.NewTrie()}
}

// Words returns the ordered word list and the supply flag.
// Callers must not mutate the returned slice.
func (d *Dictionary) Words() ([]string, bool) {
	return d.words, d.ok
}

// Snapshot returns d itself; a static dictionary is its own snapshot.
func (d *Dictionary) Snapshot() *Dictionary {
	return d
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is an entry.
func (d *Dictionary) Contains(word string) bool {
	return d.index.Get(patricia.Prefix(word)) != nil
}

// CountPrefix returns how many entries start with prefix.
func (d *Dictionary) CountPrefix(prefix string) int {
	count := 0
	err := d.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		count++
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return count
}

// ParseWords reads whitespace-separated words from r, folding uppercase to
// lowercase and discarding anything that is not purely a-z afterwards.
// Source order is preserved.
func ParseWords(r io.Reader) []string {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if w, valid := foldWord(scanner.Text()); valid {
			words = append(words, w)
		}
	}
	return words
}

// foldWord lowercases an ASCII word and reports whether it is purely a-z.
func foldWord(raw string) (string, bool) {
	b := []byte(raw)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		default:
			return "", false
		}
	}
	return string(b), len(b) > 0
}

// LoadTextFile reads a plain text word list from disk.
func LoadTextFile(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	dict := New(ParseWords(file))
	log.Debugf("Loaded %d words from %s", dict.Len(), path)
	return dict, nil
}
