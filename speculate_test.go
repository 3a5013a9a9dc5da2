package rastar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaidalo/rastar/grid"
	"github.com/kaidalo/rastar/workerpool"
)

func TestSpeculateRespectsBudget(t *testing.T) {
	m, err := grid.New(20, 20, 2, 2, nil)
	require.NoError(t, err)
	pool := workerpool.New(4)
	defer pool.Close()
	st := newSearchState(m.Height(), m.Width())
	st.beginPlan()

	cur := node{x: 5, y: 5, g: 0, incomingDir: 6} // direction 6 = (1,0): running east
	submitted := speculate(m, pool, st, cur, 2)
	assert.LessOrEqual(t, submitted, 2)
}

func TestSpeculateNoOpWithoutIncomingDirection(t *testing.T) {
	m, err := grid.New(20, 20, 2, 2, nil)
	require.NoError(t, err)
	pool := workerpool.New(2)
	defer pool.Close()
	st := newSearchState(m.Height(), m.Width())
	st.beginPlan()

	cur := node{x: 5, y: 5, incomingDir: -1}
	submitted := speculate(m, pool, st, cur, 4)
	assert.Equal(t, 0, submitted)
}

func TestSpeculateNeverSubmitsForInfeasibleOrVisitedCells(t *testing.T) {
	m, err := grid.New(10, 10, 2, 2, nil)
	require.NoError(t, err)
	pool := workerpool.New(2)
	defer pool.Close()
	st := newSearchState(m.Height(), m.Width())
	st.beginPlan()
	// Mark every cell visited so speculation has nothing legal to submit.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			st.setVisited(x, y)
		}
	}

	cur := node{x: 1, y: 1, incomingDir: 6}
	submitted := speculate(m, pool, st, cur, 8)
	assert.Equal(t, 0, submitted)
}

func TestSpeculatedHandleMatchesDirectFreeCheck(t *testing.T) {
	obs := []grid.Rect{{X: 8, Y: 4, Length: 2, Width: 2}}
	m, err := grid.New(20, 20, 2, 2, obs)
	require.NoError(t, err)
	pool := workerpool.New(2)
	defer pool.Close()
	st := newSearchState(m.Height(), m.Width())
	st.beginPlan()

	cur := node{x: 4, y: 4, incomingDir: 6} // east
	speculate(m, pool, st, cur, 6)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !st.scoreboarded(x, y) {
				continue
			}
			h := st.handleAt(x, y)
			assert.Equal(t, m.Free(x, y), h.Await(context.Background()))
		}
	}
}
