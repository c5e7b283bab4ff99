package puzzle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/solver"
	"github.com/wordweave/wordweave/wordlist"
)

func TestPuzzleSolve(t *testing.T) {
	is := is.New(t)
	b, err := board.ParseRows("tal rgo esn")
	is.NoErr(err)
	p := &Puzzle{
		Board: b,
		Words: wordlist.New([]string{
			"talon", "regs", "rage", "ogre", "ergo", "solar", "lose", "long", "glare", "nose",
		}, 4),
		MaxWords: 2,
	}
	sol, err := p.Solve(context.Background(), 1)
	is.NoErr(err)
	words := sol.Words()
	sort.Strings(words)
	is.Equal(words, []string{"regs", "talon"})
}

func TestPuzzleSolveNoSolution(t *testing.T) {
	is := is.New(t)
	b, err := board.ParseRows("cdp amr sse")
	is.NoErr(err)
	p := &Puzzle{
		Board:    b,
		Words:    wordlist.New([]string{"camp", "dress"}, 4),
		MaxWords: 2,
	}
	_, err = p.Solve(context.Background(), 2)
	is.True(errors.Is(err, solver.ErrNoSolution))
}

func TestDefinitionRoundTrip(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.yaml")
	yml := `letters: "tal rgo esn"
max_words: 2
words: [talon, regs, rage, ogre]
`
	is.NoErr(os.WriteFile(path, []byte(yml), 0644))

	def, err := LoadDefinition(path)
	is.NoErr(err)
	is.Equal(def.Letters, "tal rgo esn")
	is.Equal(def.MaxWords, 2)

	p, err := def.Build()
	is.NoErr(err)
	is.Equal(p.Board.Width(), 3)
	is.Equal(len(p.Words), 4)

	sol, err := p.Solve(context.Background(), 1)
	is.NoErr(err)
	is.Equal(len(sol.Selected), 2)
}

func TestDefinitionDefaults(t *testing.T) {
	is := is.New(t)
	def := &Definition{Letters: "ab cd", Words: []string{"abdc"}}
	p, err := def.Build()
	is.NoErr(err)
	is.Equal(p.MaxWords, DefaultMaxWords)

	sol, err := p.Solve(context.Background(), 1)
	is.NoErr(err)
	is.Equal(sol.Words(), []string{"abdc"})
}

func TestDefinitionNeedsWordSource(t *testing.T) {
	is := is.New(t)
	def := &Definition{Letters: "ab cd", MaxWords: 1}
	_, err := def.Build()
	is.True(err != nil)
}

func TestRender(t *testing.T) {
	is := is.New(t)
	b, err := board.ParseRows("tal rgo esn")
	is.NoErr(err)
	p := &Puzzle{
		Board:    b,
		Words:    wordlist.New([]string{"talon", "regs"}, 4),
		MaxWords: 2,
	}
	sol, err := p.Solve(context.Background(), 1)
	is.NoErr(err)

	out := Render(b, sol)
	is.True(strings.Contains(out, "talon"))
	is.True(strings.Contains(out, "TAL\n..O\n..N"))
	is.True(strings.Contains(out, "regs"))
}
