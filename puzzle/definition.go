package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/wordlist"
)

// A Definition is the on-disk form of a puzzle: board rows, the word
// bound, and either an inline word list or a dictionary file to load.
type Definition struct {
	// Letters holds the board rows separated by spaces, e.g. "tal rgo esn".
	Letters  string `yaml:"letters"`
	MaxWords int    `yaml:"max_words"`
	// Dictionary is a path to a word file, one word per line.
	Dictionary string `yaml:"dictionary,omitempty"`
	// Words is an inline word list, used instead of Dictionary when set.
	Words         []string `yaml:"words,omitempty"`
	MinWordLength int      `yaml:"min_word_length,omitempty"`
}

// LoadDefinition reads a YAML puzzle definition from path.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def := &Definition{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return def, nil
}

// Build turns a definition into a runnable puzzle.
func (d *Definition) Build() (*Puzzle, error) {
	b, err := board.ParseRows(d.Letters)
	if err != nil {
		return nil, err
	}
	minLen := d.MinWordLength
	if minLen == 0 {
		minLen = wordlist.DefaultMinLength
	}
	var words wordlist.WordList
	switch {
	case len(d.Words) > 0:
		words = wordlist.New(d.Words, minLen)
	case d.Dictionary != "":
		words, err = wordlist.LoadFile(d.Dictionary, minLen)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("puzzle definition has neither words nor dictionary")
	}
	maxWords := d.MaxWords
	if maxWords == 0 {
		maxWords = DefaultMaxWords
	}
	return &Puzzle{Board: b, Words: words, MaxWords: maxWords}, nil
}

// DefaultMaxWords bounds the cover size when a definition leaves it out.
const DefaultMaxWords = 8
