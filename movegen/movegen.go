// Package movegen enumerates every word of the dictionary that can be
// traced on a board. It walks a depth-first path of adjacent cells from
// each starting cell, narrowing the dictionary to the entries that still
// share the traced prefix and pruning any branch with an empty range.
package movegen

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/wordlist"
)

// A Candidate is a dictionary word together with the cell path that
// traces it. Candidates are value objects; the same word anchored at two
// different cells yields two distinct candidates.
type Candidate struct {
	Word string
	Path []int
	Mask board.Mask
}

// A Generator enumerates candidates on a fixed board against a fixed
// word list. It keeps no state between calls and is safe for concurrent
// use.
type Generator struct {
	board *board.Board
	words wordlist.WordList
}

func NewGenerator(b *board.Board, words wordlist.WordList) *Generator {
	return &Generator{board: b, words: words}
}

// GenFrom returns every candidate whose path starts at cell start.
// Emission order is depth-first following the board's neighbor order, so
// it is deterministic for a given board and word list.
//
// A path always has at least two cells: the traced word is only checked
// against the dictionary after extending from the start letter, so a
// length-1 dictionary entry matching the start cell alone is never
// emitted.
func (g *Generator) GenFrom(start int) []Candidate {
	prefix := string(g.board.Letter(start))
	sub := g.words.PrefixRange(prefix)
	if len(sub) == 0 {
		return nil
	}
	var out []Candidate
	g.extend([]int{start}, prefix, sub, &out)
	return out
}

func (g *Generator) extend(path []int, word string, sub wordlist.WordList, out *[]Candidate) {
	last := path[len(path)-1]
	for _, nb := range g.board.NeighborsOf(last) {
		if slices.Contains(path, nb) {
			continue // one word never revisits a cell
		}
		next := word + string(g.board.Letter(nb))
		nsub := sub.PrefixRange(next)
		if len(nsub) == 0 {
			continue
		}
		nextPath := append(slices.Clone(path), nb)
		if nsub[0] == next {
			*out = append(*out, Candidate{
				Word: next,
				Path: nextPath,
				Mask: board.MaskOf(nextPath),
			})
		}
		g.extend(nextPath, next, nsub, out)
	}
}

// GenAll returns every candidate on the board: GenFrom for each cell
// index in ascending order, concatenated.
func (g *Generator) GenAll() []Candidate {
	var out []Candidate
	for i := 0; i < g.board.NumCells(); i++ {
		out = append(out, g.GenFrom(i)...)
	}
	log.Debug().Int("candidates", len(out)).Msg("generated all candidates")
	return out
}
