// Package solver picks a subset of candidates that tiles the whole board:
// pairwise disjoint cells, pairwise non-crossing paths, at most maxWords
// words, union of masks equal to the full-board mask. It is a depth-first
// backtracking search over the candidate list in which recursion only ever
// moves forward through the list, so each combination is tried once.
package solver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/crosses"
	"github.com/wordweave/wordweave/movegen"
)

// ErrNoSolution means the search was exhausted without finding a covering
// combination within the word bound. It is an expected outcome, not a
// crash; callers decide how fatal it is.
var ErrNoSolution = errors.New("no covering word combination found")

// A Solution is a set of placed candidates whose masks union to the
// full-board mask.
type Solution struct {
	Selected []movegen.Candidate
	Mask     board.Mask
}

// Words returns just the selected words, in placement order.
func (s *Solution) Words() []string {
	return lo.Map(s.Selected, func(c movegen.Candidate, _ int) string {
		return c.Word
	})
}

// A Solver searches one candidate list against one board geometry. Solve
// may be called repeatedly; the solver itself holds no search state.
type Solver struct {
	candidates []movegen.Candidate
	fullMask   board.Mask
	width      int

	threads int
	nodes   atomic.Uint64
}

// New creates a solver over the given candidate list for a width x height
// board.
func New(candidates []movegen.Candidate, width, height int) *Solver {
	return &Solver{
		candidates: candidates,
		fullMask:   board.FullMask(width * height),
		width:      width,
		threads:    1,
	}
}

// SetThreads configures how many goroutines explore the first recursion
// level. With fewer than 2 the search is strictly sequential and returns
// the first full cover in candidate-list order; with more, it returns
// whichever valid cover a branch reports first, which matters only when a
// puzzle has several covers.
func (s *Solver) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	s.threads = threads
}

// Nodes returns the number of placements tried by the last Solve call.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Solve runs the search. maxWords is an inclusive upper bound on the
// selection size; covers using fewer words are accepted, since the
// termination condition is full coverage. The context is checked at the
// top of every candidate loop, so callers can impose deadlines on
// interactive use.
func (s *Solver) Solve(ctx context.Context, maxWords int) (*Solution, error) {
	s.nodes.Store(0)
	if maxWords < 1 {
		return nil, ErrNoSolution
	}

	var sol *Solution
	var err error
	if s.threads > 1 {
		sol, err = s.solveConcurrent(ctx, maxWords)
	} else {
		sel := make([]movegen.Candidate, 0, maxWords)
		sol, err = s.search(ctx, 0, 0, sel, maxWords)
	}
	if err != nil {
		return nil, err
	}
	if sol == nil {
		log.Debug().Uint64("nodes", s.nodes.Load()).Msg("search exhausted")
		return nil, ErrNoSolution
	}
	log.Debug().Uint64("nodes", s.nodes.Load()).
		Strs("words", sol.Words()).Msg("found cover")
	return sol, nil
}

// search tries candidates[from:] on top of the current selection. It
// returns a non-nil Solution on success, (nil, nil) when this branch is
// exhausted, and an error only when the context is done.
func (s *Solver) search(ctx context.Context, from int, mask board.Mask,
	selected []movegen.Candidate, maxWords int) (*Solution, error) {

	if len(selected) == maxWords {
		return nil, nil
	}
	for i := from; i < len(s.candidates); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := &s.candidates[i]
		if crosses.Overlaps(mask, c.Mask) {
			continue
		}
		if s.crossesSelected(selected, c.Path) {
			continue
		}
		s.nodes.Add(1)

		placed := mask | c.Mask
		selected = append(selected, *c)
		if placed == s.fullMask {
			// First full cover under this search order wins.
			sol := &Solution{Selected: append([]movegen.Candidate(nil), selected...), Mask: placed}
			return sol, nil
		}
		if len(selected) < maxWords {
			sol, err := s.search(ctx, i+1, placed, selected, maxWords)
			if err != nil || sol != nil {
				return sol, err
			}
		}
		selected = selected[:len(selected)-1] // backtrack
	}
	return nil, nil
}

func (s *Solver) crossesSelected(selected []movegen.Candidate, path []int) bool {
	for i := range selected {
		if crosses.Crosses(selected[i].Path, path, s.width) {
			return true
		}
	}
	return false
}

// solveConcurrent splits the first recursion level across an errgroup:
// one task per first-placed candidate, each owning its own selection and
// running mask. The first task to find a full cover cancels its siblings.
func (s *Solver) solveConcurrent(parent context.Context, maxWords int) (*Solution, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var mu sync.Mutex
	var found *Solution
	record := func(sol *Solution) {
		mu.Lock()
		if found == nil {
			found = sol
		}
		mu.Unlock()
		cancel()
	}

	var eg errgroup.Group
	eg.SetLimit(s.threads)
	for i := range s.candidates {
		i := i
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil // a sibling already won, or the caller gave up
			}
			c := &s.candidates[i]
			s.nodes.Add(1)
			if c.Mask == s.fullMask {
				record(&Solution{Selected: []movegen.Candidate{*c}, Mask: c.Mask})
				return nil
			}
			if maxWords < 2 {
				return nil
			}
			sel := make([]movegen.Candidate, 0, maxWords)
			sel = append(sel, *c)
			sol, err := s.search(ctx, i+1, c.Mask, sel, maxWords)
			if err != nil {
				return nil // context done; not a search failure
			}
			if sol != nil {
				record(sol)
			}
			return nil
		})
	}
	eg.Wait()

	if found != nil {
		return found, nil
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}
