package config

import "github.com/namsral/flag"

// Config carries everything the solving entry points need. It is built
// once from flags (with environment fallback) and passed down explicitly;
// nothing in the core reads ambient state.
type Config struct {
	DictionaryFile string
	MinWordLength  int
	MaxWords       int
	Threads        int
	Debug          bool
	CPUProfile     string

	args []string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordweave", flag.ContinueOnError)
	fs.StringVar(&c.DictionaryFile, "dictionary-file", "american_english_dictionary.txt", "the dictionary file to use, one word per line")
	fs.IntVar(&c.MinWordLength, "min-word-length", 4, "drop dictionary words shorter than this")
	fs.IntVar(&c.MaxWords, "max-words", 8, "maximum number of words in a cover")
	fs.IntVar(&c.Threads, "threads", 1, "goroutines for candidate generation and the first search level")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	fs.StringVar(&c.CPUProfile, "cpu-profile", "", "write a pprof CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}
