package automatic

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/crosses"
	"github.com/wordweave/wordweave/puzzle"
	"github.com/wordweave/wordweave/wordlist"
)

var genWords = wordlist.New([]string{
	"talon", "regs", "rage", "ogre", "ergo", "solar", "lose", "long",
	"glare", "nose", "stone", "rates", "aeons", "snore",
}, 4)

func TestGeneratePlacementsAreValid(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(genWords, nil)

	b, placements, err := gen.Generate(3, 3, 2)
	is.NoErr(err)
	is.Equal(b.NumCells(), 9)
	is.True(len(placements) <= 2)

	var union board.Mask
	for i, p := range placements {
		is.Equal(b.WordAt(p.Path), p.Word) // the board spells the word
		m := board.MaskOf(p.Path)
		is.Equal(m.Count(), len(p.Word))
		is.True(!crosses.Overlaps(union, m))
		union |= m
		for j := 0; j < i; j++ {
			is.True(!crosses.Crosses(placements[j].Path, p.Path, b.Width()))
		}
	}
	is.Equal(union, b.FullMask()) // placements tile the whole board
}

func TestGeneratedBoardIsSolvable(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(genWords, nil)

	b, _, err := gen.Generate(3, 3, 2)
	is.NoErr(err)

	p := &puzzle.Puzzle{Board: b, Words: genWords, MaxWords: 2}
	sol, err := p.Solve(context.Background(), 1)
	is.NoErr(err)
	is.Equal(sol.Mask, b.FullMask())
}

func TestGenerateRectangular(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(genWords, nil)

	b, placements, err := gen.Generate(4, 2, 2)
	is.NoErr(err)
	is.Equal(b.Width(), 4)
	is.Equal(b.Height(), 2)
	var union board.Mask
	for _, p := range placements {
		union |= board.MaskOf(p.Path)
	}
	is.Equal(union, b.FullMask())
}

func TestGenerateImpossibleLengths(t *testing.T) {
	is := is.New(t)
	// Only 4-letter words: a 9-cell board can't be split into fours.
	gen := NewGenerator(wordlist.New([]string{"regs", "rage", "lose"}, 4), nil)
	_, _, err := gen.Generate(3, 3, 2)
	is.True(errors.Is(err, ErrGenerationFailed))
}

func TestGenerateEmptyWordList(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(nil, nil)
	_, _, err := gen.Generate(3, 3, 2)
	is.True(errors.Is(err, ErrGenerationFailed))
}

func TestGenerateTooLarge(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(genWords, nil)
	_, _, err := gen.Generate(9, 9, 12)
	is.True(errors.Is(err, board.ErrBoardTooLarge))
}
