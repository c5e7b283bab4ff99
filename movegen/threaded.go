package movegen

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GenAllConcurrent behaves exactly like GenAll but fans the starting
// cells out over an errgroup. Each starting cell's search touches only
// the immutable board and word list, so the cells are independent;
// per-cell results are stitched back together in ascending cell order to
// keep the candidate list identical to the sequential one.
func (g *Generator) GenAllConcurrent(ctx context.Context, threads int) ([]Candidate, error) {
	if threads < 2 {
		return g.GenAll(), nil
	}
	perCell := make([][]Candidate, g.board.NumCells())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)
	for i := 0; i < g.board.NumCells(); i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perCell[i] = g.GenFrom(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []Candidate
	for _, cs := range perCell {
		out = append(out, cs...)
	}
	return out, nil
}
