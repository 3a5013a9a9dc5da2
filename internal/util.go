// Package internal holds small helpers shared by cmd/rastar that aren't
// part of the public rastar/grid/workerpool API surface.
package internal

import (
	"fmt"
	"math/rand"

	"github.com/kaidalo/rastar/grid"
)

// RandomFeasiblePoint draws a uniformly random (x, y) from m that is both
// feasible and free, retrying until one is found or attempts is exhausted.
// This is the "random test-point generation" collaborator spec.md §1 calls
// out as external to the core: the CLI uses it to build the start/goal
// pairs for --num-tests trials.
func RandomFeasiblePoint(r *rand.Rand, m *grid.Map, attempts int) (x, y int, err error) {
	for i := 0; i < attempts; i++ {
		x = r.Intn(m.Width())
		y = r.Intn(m.Height())
		if m.Feasible(x, y) && m.Free(x, y) {
			return x, y, nil
		}
	}

	return 0, 0, fmt.Errorf("internal: no feasible/free point found in %d attempts", attempts)
}
