package rastar

import (
	"math"

	"github.com/kaidalo/rastar/workerpool"
)

// searchState holds the per-cell tables a plan mutates: the g-cost table,
// the visited bitmap, the speculation scoreboard and its handle table.
//
// Per spec.md's Design Notes (§9), these tables are allocated once (sized to
// the map) and reused across repeated Plan calls rather than reinitialized
// in O(H*W) every time: each cell additionally records the generation at
// which it was last written, and a read for a stale generation is treated
// as the table's zero value without touching any other cell.
type searchState struct {
	height, width int
	gen           int32

	cellGen  [][]int32
	g        [][]float64
	bestNode [][]int

	visitedGen [][]int32

	specGen    [][]int32
	specHandle [][]*workerpool.Handle
}

func newSearchState(height, width int) *searchState {
	s := &searchState{height: height, width: width}
	s.cellGen = make2D[int32](height, width)
	s.g = make2D[float64](height, width)
	s.bestNode = make2D[int](height, width)
	s.visitedGen = make2D[int32](height, width)
	s.specGen = make2D[int32](height, width)
	s.specHandle = make([][]*workerpool.Handle, height)
	for y := range s.specHandle {
		s.specHandle[y] = make([]*workerpool.Handle, width)
	}

	return s
}

func make2D[T any](height, width int) [][]T {
	grid := make([][]T, height)
	for y := range grid {
		grid[y] = make([]T, width)
	}
	return grid
}

// beginPlan starts a fresh plan: every per-cell table reads back as its zero
// value until written again under the new generation.
func (s *searchState) beginPlan() {
	s.gen++
}

// gCost returns the best known g-value for (x, y), or +Inf if none has been
// recorded under the current generation.
func (s *searchState) gCost(x, y int) float64 {
	if s.cellGen[y][x] == s.gen {
		return s.g[y][x]
	}
	return math.Inf(1)
}

// setG records g as the best known cost to (x, y) and nodeIdx as the arena
// index of the node that achieved it.
func (s *searchState) setG(x, y int, g float64, nodeIdx int) {
	s.cellGen[y][x] = s.gen
	s.g[y][x] = g
	s.bestNode[y][x] = nodeIdx
}

// bestNodeAt returns the arena index of the best known node at (x, y).
// Only meaningful when gCost(x, y) < +Inf.
func (s *searchState) bestNodeAt(x, y int) int {
	return s.bestNode[y][x]
}

// visited reports whether (x, y) has been popped and processed in the
// current plan.
func (s *searchState) visited(x, y int) bool {
	return s.visitedGen[y][x] == s.gen
}

func (s *searchState) setVisited(x, y int) {
	s.visitedGen[y][x] = s.gen
}

// scoreboarded reports whether speculation has already submitted a
// free-check for (x, y) in the current plan.
func (s *searchState) scoreboarded(x, y int) bool {
	return s.specGen[y][x] == s.gen
}

// setScoreboard marks (x, y) as scoreboarded and records the handle whose
// awaited value will be free(x, y). Monotone within a plan: once set, it is
// never cleared until the next beginPlan.
func (s *searchState) setScoreboard(x, y int, h *workerpool.Handle) {
	s.specGen[y][x] = s.gen
	s.specHandle[y][x] = h
}

// handleAt returns the handle recorded by setScoreboard. Only valid when
// scoreboarded(x, y) is true.
func (s *searchState) handleAt(x, y int) *workerpool.Handle {
	return s.specHandle[y][x]
}
