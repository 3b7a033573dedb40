package dictionary

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Fetch downloads a word list from url once, before the solver runs.
// Any failure yields an empty dictionary with the supply flag unset;
// the solver treats that as a normal empty input, never an error.
func Fetch(url string, timeout time.Duration) *Dictionary {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(url)
	if err != nil {
		log.Warnf("Failed to fetch word list from %s: %v", url, err)
		return NewFailed()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("Word list fetch from %s returned status %d", url, resp.StatusCode)
		return NewFailed()
	}

	dict := New(ParseWords(resp.Body))
	log.Debugf("Fetched %d words from %s", dict.Len(), url)
	return dict
}
