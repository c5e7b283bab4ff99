package movegen

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/wordlist"
)

var testWords = []string{
	"talon", "regs", "rage", "ogre", "ergo", "solar", "lose", "long", "glare", "nose",
}

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.ParseRows("tal rgo esn")
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGenFrom(t *testing.T) {
	is := is.New(t)
	b := testBoard(t)
	gen := NewGenerator(b, wordlist.New(testWords, 4))

	// t a l
	// r g o
	// e s n
	fromT := gen.GenFrom(0)
	is.Equal(len(fromT), 1)
	is.Equal(fromT[0].Word, "talon")
	is.Equal(fromT[0].Path, []int{0, 1, 2, 5, 8})
	is.Equal(fromT[0].Mask, board.MaskOf([]int{0, 1, 2, 5, 8}))

	// No word starts with a.
	is.Equal(len(gen.GenFrom(1)), 0)
}

func TestGenFromMultipleWordsSharePrefixPath(t *testing.T) {
	is := is.New(t)
	// l o s
	// x e x
	// x x x
	b, err := board.ParseRows("los xex xxx")
	is.NoErr(err)
	gen := NewGenerator(b, wordlist.New([]string{"lose", "loses", "lost"}, 4))

	got := gen.GenFrom(0)
	// "lose" is emitted and the search keeps extending past the match
	// looking for "loses"; no second s is reachable, and "lost" has no
	// path at all.
	is.Equal(len(got), 1)
	is.Equal(got[0].Word, "lose")
	is.Equal(got[0].Path, []int{0, 1, 2, 4})
}

func TestGenAllCandidateValidity(t *testing.T) {
	is := is.New(t)
	b := testBoard(t)
	gen := NewGenerator(b, wordlist.New(testWords, 4))

	cands := gen.GenAll()
	is.True(len(cands) > 0)
	for _, c := range cands {
		is.Equal(b.WordAt(c.Path), c.Word) // word spells its path
		is.Equal(len(c.Path), len(c.Word))
		is.Equal(c.Mask.Count(), len(c.Path)) // no repeated cell
		is.Equal(c.Mask, board.MaskOf(c.Path))
		for j := 0; j+1 < len(c.Path); j++ {
			neighbors := b.NeighborsOf(c.Path[j])
			found := false
			for _, n := range neighbors {
				if n == c.Path[j+1] {
					found = true
				}
			}
			is.True(found) // consecutive path cells adjacent
		}
	}
}

func TestGenAllEmptyWordList(t *testing.T) {
	is := is.New(t)
	b := testBoard(t)
	gen := NewGenerator(b, nil)
	is.Equal(len(gen.GenAll()), 0)
}

func TestGenAllNoCellReuse(t *testing.T) {
	is := is.New(t)
	// "noon" needs two o cells; a board with only one o can't trace it.
	b, err := board.ParseRows("no xx")
	is.NoErr(err)
	gen := NewGenerator(b, wordlist.New([]string{"noon"}, 4))
	is.Equal(len(gen.GenAll()), 0)
}

func TestGenAllConcurrentMatchesSequential(t *testing.T) {
	is := is.New(t)
	b := testBoard(t)
	gen := NewGenerator(b, wordlist.New(testWords, 4))

	seq := gen.GenAll()
	conc, err := gen.GenAllConcurrent(context.Background(), 4)
	is.NoErr(err)
	is.Equal(len(conc), len(seq))
	for i := range seq {
		is.Equal(conc[i].Word, seq[i].Word)
		is.Equal(conc[i].Path, seq[i].Path)
	}
}

func BenchmarkGenAll(b *testing.B) {
	brd, err := board.ParseRows("tal rgo esn")
	if err != nil {
		b.Fatal(err)
	}
	gen := NewGenerator(brd, wordlist.New(testWords, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.GenAll()
	}
}
