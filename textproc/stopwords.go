// SPDX-License-Identifier: MIT

package textproc

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed stopwords/*.txt
var stopwordFS embed.FS

// StopSet is a set of normalised stopwords.
type StopSet map[string]struct{}

// Contains reports whether w is a stopword.
func (s StopSet) Contains(w string) bool {
	_, ok := s[w]

	return ok
}

// DefaultStopwords returns the bundled list for lang, or an empty set when
// none is bundled.
func DefaultStopwords(lang Language) StopSet {
	f, err := stopwordFS.Open("stopwords/" + string(lang) + ".txt")
	if err != nil {
		return StopSet{}
	}
	defer f.Close()
	set, err := ReadStopwords(f)
	if err != nil {
		return StopSet{}
	}

	return set
}

// ReadStopwords reads one word per line (UTF-8). Blank lines and lines
// starting with # are skipped; words are lower-cased.
func ReadStopwords(r io.Reader) (StopSet, error) {
	set := StopSet{}
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.ToLower(strings.TrimSpace(scan.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[w] = struct{}{}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("ReadStopwords: %w", err)
	}

	return set, nil
}

// LoadStopwords reads a stopword file.
func LoadStopwords(path string) (StopSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadStopwords: %w", err)
	}
	defer f.Close()

	return ReadStopwords(f)
}

// FromWords builds a StopSet from a list, lower-casing every entry.
func FromWords(words []string) StopSet {
	set := make(StopSet, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}

	return set
}
