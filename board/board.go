// Package board holds the letter grid that words are traced on, plus the
// cell adjacency and bitmask primitives everything downstream is built from.
package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when the letters do not fill a
	// w by h grid exactly.
	ErrInvalidDimensions = errors.New("letters length does not match width*height")
	// ErrBoardTooLarge is returned for boards whose cells do not fit in
	// a single Mask word.
	ErrBoardTooLarge = fmt.Errorf("board has more than %d cells", MaxCells)
)

// A Board is an immutable rectangular grid of lowercase letters, stored
// flat in row-major order. Cell index i sits at row i/width, column
// i%width.
type Board struct {
	letters []byte
	width   int
	height  int
}

// FromLetters creates a board from a flat row-major letter sequence.
func FromLetters(letters string, width, height int) (*Board, error) {
	if len(letters) != width*height {
		return nil, fmt.Errorf("%w: %d letters for %dx%d grid",
			ErrInvalidDimensions, len(letters), width, height)
	}
	if width*height > MaxCells {
		return nil, ErrBoardTooLarge
	}
	return &Board{letters: []byte(letters), width: width, height: height}, nil
}

// ParseRows creates a board from rows of letters separated by spaces,
// e.g. "tal rgo esn" for a 3x3 grid. Every row must have the same length.
func ParseRows(rows string) (*Board, error) {
	groups := strings.Fields(rows)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no letters", ErrInvalidDimensions)
	}
	width := len(groups[0])
	for _, g := range groups[1:] {
		if len(g) != width {
			return nil, fmt.Errorf("%w: row %q has length %d, want %d",
				ErrInvalidDimensions, g, len(g), width)
		}
	}
	return FromLetters(strings.Join(groups, ""), width, len(groups))
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// NumCells returns width*height.
func (b *Board) NumCells() int { return b.width * b.height }

// Letter returns the letter at cell index i.
func (b *Board) Letter(i int) byte { return b.letters[i] }

// WordAt concatenates the letters along path, in order.
func (b *Board) WordAt(path []int) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, i := range path {
		sb.WriteByte(b.letters[i])
	}
	return sb.String()
}

// NeighborsOf returns the adjacent cell indices of cell i on this board.
func (b *Board) NeighborsOf(i int) []int {
	return Neighbors(i, b.width, b.height)
}

// FullMask returns the mask with a bit set for every cell of the board.
func (b *Board) FullMask() Mask {
	return FullMask(b.NumCells())
}

// String renders the grid row by row, for logs and the shell.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		sb.Write(b.letters[r*b.width : (r+1)*b.width])
		if r != b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
