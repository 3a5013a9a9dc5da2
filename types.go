package rastar

import "math"

// Point names a grid cell (x, y).
type Point struct {
	X, Y int
}

// direction i gives the (dx, dy) of the i-th of the 8 compass moves. The
// indexing is fixed by the output contract: a Result's Path is a sequence
// of these indices, applied in order from the start.
var direction = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1} /*    */, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// moveCost[i] is the Euclidean length of direction[i]: 1 for cardinal moves,
// sqrt(2) for diagonal ones.
var moveCost = [8]float64{
	math.Sqrt2, 1, math.Sqrt2,
	1, 1,
	math.Sqrt2, 1, math.Sqrt2,
}

// outerDirs is the speculation fanout table from spec.md §4.3: for an
// incoming direction a, outerDirs[a] names the "forward cone" of directions
// explored ahead of the frontier while running along a. Diagonal incoming
// directions fan out to 5 neighbors, cardinal ones to 3; the set always
// contains a itself.
var outerDirs = [8][]int{
	{0, 1, 2, 3, 5},
	{0, 1, 2},
	{0, 1, 2, 4, 7},
	{0, 3, 5},
	{2, 4, 7},
	{0, 3, 5, 6, 7},
	{5, 6, 7},
	{2, 4, 5, 6, 7},
}

func heuristic(x, y, gx, gy int) float64 {
	dx := float64(x - gx)
	dy := float64(y - gy)

	return math.Sqrt(dx*dx + dy*dy)
}
