package board

// Neighbors returns the indices of every cell adjacent to cell i, treating
// the flat array as a 2D grid of width w and height h. Diagonal neighbors
// are included; there is no wraparound, so moving west from column 0 or
// east from the last column never lands on a different row.
//
// The order is fixed: north, west, east, south, northwest, northeast,
// southwest, southeast, each present only when it is inside the grid.
// Downstream traversal order depends on this order staying put.
func Neighbors(i, w, h int) []int {
	size := w * h
	neighbors := make([]int, 0, 8)

	if i-w >= 0 {
		neighbors = append(neighbors, i-w) // north
	}
	if i%w != 0 {
		neighbors = append(neighbors, i-1) // west
	}
	if (i+1)%w != 0 {
		neighbors = append(neighbors, i+1) // east
	}
	if i+w < size {
		neighbors = append(neighbors, i+w) // south
	}
	if i-w-1 >= 0 && i%w != 0 {
		neighbors = append(neighbors, i-w-1) // northwest
	}
	if i+1-w >= 0 && (i+1)%w != 0 {
		neighbors = append(neighbors, i+1-w) // northeast
	}
	if i+w-1 < size && i%w != 0 {
		neighbors = append(neighbors, i+w-1) // southwest
	}
	if i+w+1 < size && (i+1)%w != 0 {
		neighbors = append(neighbors, i+w+1) // southeast
	}

	return neighbors
}
