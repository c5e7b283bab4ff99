// Package puzzle ties the pieces together: a board, a dictionary and a
// word bound make a puzzle; solving it generates all candidates and runs
// the coverage search.
package puzzle

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/movegen"
	"github.com/wordweave/wordweave/solver"
	"github.com/wordweave/wordweave/wordlist"
)

// A Puzzle is one solvable instance: a board plus the dictionary to draw
// from and the maximum number of words the cover may use.
type Puzzle struct {
	Board    *board.Board
	Words    wordlist.WordList
	MaxWords int
}

// Solve generates every candidate on the board and searches for a full
// cover. threads > 1 parallelizes both candidate generation and the first
// level of the cover search.
func (p *Puzzle) Solve(ctx context.Context, threads int) (*solver.Solution, error) {
	gen := movegen.NewGenerator(p.Board, p.Words)
	cands, err := gen.GenAllConcurrent(ctx, threads)
	if err != nil {
		return nil, err
	}
	log.Info().Int("candidates", len(cands)).Int("maxWords", p.MaxWords).
		Msg("starting cover search")

	s := solver.New(cands, p.Board.Width(), p.Board.Height())
	s.SetThreads(threads)
	sol, err := s.Solve(ctx, p.MaxWords)
	if err != nil {
		return nil, err
	}
	log.Info().Uint64("nodes", s.Nodes()).Strs("words", sol.Words()).Msg("solved")
	return sol, nil
}

// Render draws the solution as one grid per word, with the word's cells
// uppercased in trace order and every other cell shown as a dot.
func Render(b *board.Board, sol *solver.Solution) string {
	var sb strings.Builder
	for _, c := range sol.Selected {
		fmt.Fprintf(&sb, "%s (%v)\n", c.Word, c.Path)
		cells := make([]byte, b.NumCells())
		for i := range cells {
			cells[i] = '.'
		}
		for _, i := range c.Path {
			cells[i] = b.Letter(i) - 'a' + 'A'
		}
		for r := 0; r < b.Height(); r++ {
			sb.Write(cells[r*b.Width() : (r+1)*b.Width()])
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
