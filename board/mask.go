package board

import "math/bits"

// MaxCells is the largest board we support. A Mask is a single machine
// word with one bit per cell.
const MaxCells = 64

// A Mask is a bit-set over board cells. Bit i corresponds to cell index i.
type Mask uint64

// Set returns the mask with the bit for cell i turned on.
func (m Mask) Set(i int) Mask {
	return m | (1 << uint(i))
}

// Has returns true if the bit for cell i is on.
func (m Mask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}

// Count returns the number of set cells.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// MaskOf builds a mask from a sequence of cell indices.
func MaskOf(path []int) Mask {
	var m Mask
	for _, i := range path {
		m = m.Set(i)
	}
	return m
}

// FullMask returns the mask with the first n bits set; n must be at
// most MaxCells.
func FullMask(n int) Mask {
	if n == MaxCells {
		return ^Mask(0)
	}
	return Mask(1)<<uint(n) - 1
}
