package rastar

import (
	"github.com/kaidalo/rastar/grid"
	"github.com/kaidalo/rastar/workerpool"
)

// speculate implements the Speculation Controller from spec.md §4.4: a
// stateless function of the current node, the idle-worker budget, the
// search-state tables and the map. It prefetches free(x,y) checks for cells
// along the "forward cone" ahead of cur's incoming direction, bounded by
// budget, and records each submission on the scoreboard so the main loop's
// own neighbor scheduling (step 5) never resubmits the same cell.
//
// speculate never submits a task for an infeasible cell, never steps past
// an infeasible projected cursor, and never submits more than budget tasks.
func speculate(m *grid.Map, pool *workerpool.Pool, st *searchState, cur node, budget int) int {
	if budget <= 0 || cur.incomingDir < 0 {
		return 0
	}

	a := cur.incomingDir
	dx, dy := direction[a][0], direction[a][1]
	cx, cy := cur.x, cur.y
	submitted := 0

	for budget > 0 {
		cx += dx
		cy += dy
		if !m.Feasible(cx, cy) {
			break
		}

		for _, d := range outerDirs[a] {
			if budget == 0 {
				break
			}
			nx := cx + direction[d][0]
			ny := cy + direction[d][1]
			if !m.Feasible(nx, ny) || st.visited(nx, ny) || st.scoreboarded(nx, ny) {
				continue
			}

			x, y := nx, ny
			h := pool.Submit(func() bool { return m.Free(x, y) })
			st.setScoreboard(nx, ny, h)
			budget--
			submitted++
		}
	}

	return submitted
}
