// Package wordlist loads and queries the dictionary the solver draws
// words from. The list is kept sorted and deduplicated so that all words
// sharing a prefix are contiguous and prefix lookups are a pair of binary
// searches.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// DefaultMinLength is the shortest word worth tracing on a board. Shorter
// entries make the candidate space explode without making puzzles better.
const DefaultMinLength = 4

// A WordList is a sorted, deduplicated list of lowercase words. The zero
// value is an empty list.
type WordList []string

// New builds a WordList from arbitrary words, applying the same filters
// as Load: entries containing uppercase letters (proper nouns) or ending
// in possessive 's are dropped, as is anything shorter than minLength.
func New(words []string, minLength int) WordList {
	kept := lo.Filter(words, func(w string, _ int) bool {
		return keep(w, minLength)
	})
	sort.Strings(kept)
	return lo.Uniq(kept)
}

// Load reads one word per line from r and builds a WordList.
func Load(r io.Reader, minLength int) (WordList, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if keep(w, minLength) {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.Strings(words)
	return lo.Uniq(words), nil
}

// LoadFile reads a dictionary file. The content fingerprint is logged so
// runs against different dictionary revisions can be told apart.
func LoadFile(path string, minLength int) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	wl, err := Load(f, minLength)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", len(wl)).
		Str("fingerprint", wl.Fingerprint()).Msg("loaded dictionary")
	return wl, nil
}

func keep(w string, minLength int) bool {
	if len(w) < minLength {
		return false
	}
	if strings.HasSuffix(w, "'s") {
		return false
	}
	// Words with uppercase letters are proper nouns; words with anything
	// else non-alphabetic can't be traced on a board of lowercase cells.
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// PrefixRange returns the contiguous sub-list of words starting with
// prefix. The returned slice aliases the receiver; it is read-only like
// everything else here.
func (wl WordList) PrefixRange(prefix string) WordList {
	start := sort.SearchStrings(wl, prefix)
	end := start
	for end < len(wl) && strings.HasPrefix(wl[end], prefix) {
		// The upper bound could also be a second binary search, but prefix
		// ranges are tiny after the first couple of letters.
		end++
	}
	return wl[start:end]
}

// Contains reports whether word is in the list.
func (wl WordList) Contains(word string) bool {
	i := sort.SearchStrings(wl, word)
	return i < len(wl) && wl[i] == word
}

// Fingerprint returns a short hex hash of the list contents.
func (wl WordList) Fingerprint() string {
	h := xxhash.New()
	for _, w := range wl {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
