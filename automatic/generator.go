// Package automatic builds solvable puzzle boards without human input.
// It tiles an empty grid with dictionary words laid along random
// non-crossing snake paths, then hands the resulting letters out as a
// board that the solver is guaranteed to be able to cover.
package automatic

import (
	"errors"
	"slices"
	"sort"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/crosses"
	"github.com/wordweave/wordweave/wordlist"
)

// ErrGenerationFailed means the tiling search ran out of attempts. Larger
// boards want a dictionary with a good spread of word lengths.
var ErrGenerationFailed = errors.New("could not tile a board with the given words")

// A Placement is a word written onto the grid along a path.
type Placement struct {
	Word string
	Path []int
}

// maxNodes caps the backtracking effort of a single tiling attempt, and
// maxAttempts bounds how many fresh randomized attempts Generate makes
// before giving up.
const (
	maxNodes    = 100000
	maxAttempts = 25
)

// A Generator makes boards from a dictionary. It is not safe for
// concurrent use; each goroutine should own one.
type Generator struct {
	rng   *frand.RNG
	byLen map[int][]string
	// sorted distinct word lengths available
	lengths []int
	minLen  int
}

// NewGenerator creates a generator drawing words from wl. rng may be nil,
// in which case a fresh fast RNG is used.
func NewGenerator(wl wordlist.WordList, rng *frand.RNG) *Generator {
	if rng == nil {
		rng = frand.New()
	}
	g := &Generator{rng: rng, byLen: make(map[int][]string)}
	for _, w := range wl {
		if len(g.byLen[len(w)]) == 0 {
			g.lengths = append(g.lengths, len(w))
		}
		g.byLen[len(w)] = append(g.byLen[len(w)], w)
	}
	// wordlist is sorted by word, so lengths arrive unordered.
	sort.Ints(g.lengths)
	if len(g.lengths) > 0 {
		g.minLen = g.lengths[0]
	}
	return g
}

type genState struct {
	width, height int
	letters       []byte
	mask          board.Mask
	paths         [][]int
	placements    []Placement
	maxWords      int
	nodes         int
}

// Generate tiles a width x height board with at most maxWords words and
// returns the board plus the placements used. The placements are one
// valid cover; the solver may find others.
func (g *Generator) Generate(width, height, maxWords int) (*board.Board, []Placement, error) {
	if width*height > board.MaxCells {
		return nil, nil, board.ErrBoardTooLarge
	}
	if g.minLen == 0 {
		return nil, nil, ErrGenerationFailed
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		st := &genState{
			width:    width,
			height:   height,
			letters:  make([]byte, width*height),
			maxWords: maxWords,
		}
		if !g.tile(st) {
			continue
		}
		b, err := board.FromLetters(string(st.letters), width, height)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Int("attempt", attempt).Int("nodes", st.nodes).
			Int("words", len(st.placements)).Msg("generated board")
		return b, st.placements, nil
	}
	return nil, nil, ErrGenerationFailed
}

func (g *Generator) tile(st *genState) bool {
	full := board.FullMask(st.width * st.height)
	if st.mask == full {
		return true
	}
	if len(st.placements) == st.maxWords || st.nodes > maxNodes {
		return false
	}

	remaining := st.width*st.height - st.mask.Count()
	low := lowestEmpty(st.mask)

	for _, li := range g.rng.Perm(len(g.lengths)) {
		length := g.lengths[li]
		// The leftover after this word must be zero or fit another word.
		if length > remaining || (remaining-length > 0 && remaining-length < g.minLen) {
			continue
		}
		words := g.byLen[length]
		// A few random words of this length; trying all of them buys
		// nothing since the letters are ours to choose.
		tries := 3
		if tries > len(words) {
			tries = len(words)
		}
		for t := 0; t < tries; t++ {
			word := words[g.rng.Intn(len(words))]
			path := make([]int, 0, length)
			if g.findPath(st, low, length, &path) {
				g.write(st, word, path)
				if g.tile(st) {
					return true
				}
				g.unwrite(st)
			}
			st.nodes++
		}
	}
	return false
}

// findPath grows a random simple path of exactly the wanted length
// through empty cells, starting at start. The finished path must pass the
// windowed diagonal check against everything already placed.
func (g *Generator) findPath(st *genState, start, length int, path *[]int) bool {
	*path = append(*path, start)
	if len(*path) == length {
		m := board.MaskOf(*path)
		if crosses.NoDiagonalOverlap(m, st.mask, st.width, st.height) &&
			!crosses.CrossesAny(st.paths, *path, st.width) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		return false
	}
	neighbors := board.Neighbors(start, st.width, st.height)
	g.rng.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})
	for _, nb := range neighbors {
		if st.mask.Has(nb) || slices.Contains(*path, nb) {
			continue
		}
		if g.findPath(st, nb, length, path) {
			return true
		}
	}
	*path = (*path)[:len(*path)-1]
	return false
}

func (g *Generator) write(st *genState, word string, path []int) {
	for i, cell := range path {
		st.letters[cell] = word[i]
	}
	st.mask |= board.MaskOf(path)
	st.paths = append(st.paths, path)
	st.placements = append(st.placements, Placement{Word: word, Path: path})
}

func (g *Generator) unwrite(st *genState) {
	last := st.placements[len(st.placements)-1]
	st.mask &^= board.MaskOf(last.Path)
	st.paths = st.paths[:len(st.paths)-1]
	st.placements = st.placements[:len(st.placements)-1]
}

func lowestEmpty(m board.Mask) int {
	i := 0
	for m.Has(i) {
		i++
	}
	return i
}
