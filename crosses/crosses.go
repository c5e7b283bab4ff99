// Package crosses decides whether two traced words collide: either by
// claiming the same cell (mask overlap) or by their connecting segments
// intersecting on the grid. Words are drawn as polylines between cell
// centers, and a legal puzzle never draws one word's line through
// another's.
package crosses

import "github.com/wordweave/wordweave/board"

// Overlaps reports whether two cell masks share any cell.
func Overlaps(a, b board.Mask) bool {
	return a&b != 0
}

// Crosses reports whether any connecting segment of path a intersects any
// connecting segment of path b. Paths are cell index sequences on a grid
// of the given width; a segment joins the centers of two consecutive
// cells.
//
// The test is the standard strict orientation test: two segments cross
// only when each segment's endpoints lie on strictly opposite sides of
// the other segment. Collinear or endpoint-touching configurations do not
// count as crossing. Crosses(a, b, w) == Crosses(b, a, w).
func Crosses(a, b []int, width int) bool {
	for j := 0; j+1 < len(a); j++ {
		a1r, a1c := a[j]/width, a[j]%width
		a2r, a2c := a[j+1]/width, a[j+1]%width
		for i := 0; i+1 < len(b); i++ {
			b1r, b1c := b[i]/width, b[i]%width
			b2r, b2c := b[i+1]/width, b[i+1]%width
			if segmentsCross(a1r, a1c, a2r, a2c, b1r, b1c, b2r, b2c) {
				return true
			}
		}
	}
	return false
}

// CrossesAny reports whether path crosses any of the given paths.
func CrossesAny(paths [][]int, path []int, width int) bool {
	for _, p := range paths {
		if Crosses(p, path, width) {
			return true
		}
	}
	return false
}

func segmentsCross(p1r, p1c, p2r, p2c, q1r, q1c, q2r, q2c int) bool {
	d1 := direction(q1r, q1c, q2r, q2c, p1r, p1c)
	d2 := direction(q1r, q1c, q2r, q2c, p2r, p2c)
	d3 := direction(p1r, p1c, p2r, p2c, q1r, q1c)
	d4 := direction(p1r, p1c, p2r, p2c, q2r, q2c)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// direction is the cross product of (b-a) and (p-a): positive, negative
// or zero depending on which side of line ab the point p falls.
// Coordinates are bounded by the board dimensions, so int never gets
// anywhere near overflow.
func direction(ar, ac, br, bc, pr, pc int) int {
	return (bc-ac)*(pr-ar) - (br-ar)*(pc-ac)
}

// NoDiagonalOverlap is a fast conservative mask-only check used by the
// puzzle generator as a pre-filter before the exact Crosses test. It
// slides a 2x2 window over the grid and rejects any window where block
// holds both cells of one diagonal while placed holds both cells of the
// other: when those diagonal pairs are consecutive path cells, the two
// unit segments cross. A mask can't tell whether its diagonal pair is
// actually consecutive on the path, so the check over-rejects paths that
// merely pass through both corners; it never admits a real unit-diagonal
// crossing.
func NoDiagonalOverlap(block, placed board.Mask, width, height int) bool {
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			i1 := y*width + x // top-left
			i2 := i1 + 1      // top-right
			i3 := i1 + width  // bottom-left
			i4 := i3 + 1      // bottom-right

			b1 := block >> uint(i1) & 1
			b2 := block >> uint(i2) & 1
			b3 := block >> uint(i3) & 1
			b4 := block >> uint(i4) & 1

			e1 := placed >> uint(i1) & 1
			e2 := placed >> uint(i2) & 1
			e3 := placed >> uint(i3) & 1
			e4 := placed >> uint(i4) & 1

			if (b1&b4 != 0 && e2&e3 != 0) || (b2&b3 != 0 && e1&e4 != 0) {
				return false
			}
		}
	}
	return true
}
