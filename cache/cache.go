// Package cache keeps loaded dictionaries around so a long-lived shell or
// server pays the file read and sort once per path, not once per solve.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wordweave/wordweave/config"
	"github.com/wordweave/wordweave/wordlist"
)

type dictCache struct {
	sync.Mutex
	// keyed by path; min length is part of the key since it changes the
	// loaded contents
	lists map[dictKey]wordlist.WordList
}

type dictKey struct {
	path   string
	minLen int
}

var global = &dictCache{lists: make(map[dictKey]wordlist.WordList)}

// Dictionary returns the word list at cfg.DictionaryFile if path is
// empty, or at path otherwise, loading and caching it on first use.
func Dictionary(cfg *config.Config, path string) (wordlist.WordList, error) {
	if path == "" {
		path = cfg.DictionaryFile
	}
	key := dictKey{path: path, minLen: cfg.MinWordLength}

	global.Lock()
	defer global.Unlock()
	if wl, ok := global.lists[key]; ok {
		log.Debug().Str("path", path).Msg("dictionary cache hit")
		return wl, nil
	}
	wl, err := wordlist.LoadFile(path, cfg.MinWordLength)
	if err != nil {
		return nil, err
	}
	global.lists[key] = wl
	return wl, nil
}

// Reset drops every cached dictionary.
func Reset() {
	global.Lock()
	defer global.Unlock()
	global.lists = make(map[dictKey]wordlist.WordList)
}
