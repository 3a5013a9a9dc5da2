package rastar

import (
	"context"

	"github.com/kaidalo/rastar/grid"
	"github.com/kaidalo/rastar/workerpool"
)

// Options configures a Planner. Use DefaultOptions with the With* functional
// options below, mirroring the pack's functional-options idiom (e.g.
// katalvlaran/lvlath's dijkstra.Option, pdrpinto/astar.Option).
type Options struct {
	Weight       float64
	Threads      int
	Speculation  bool
	ExpansionCap uint64
}

// Option mutates an Options value.
type Option func(*Options)

// WithWeight sets the heuristic weight w >= 1 used by f = g + w*h.
func WithWeight(w float64) Option {
	return func(o *Options) { o.Weight = w }
}

// WithThreads sets the worker-pool size.
func WithThreads(n int) Option {
	return func(o *Options) { o.Threads = n }
}

// WithSpeculation enables or disables runahead prefetching of collision
// checks.
func WithSpeculation(enabled bool) Option {
	return func(o *Options) { o.Speculation = enabled }
}

// WithExpansionCap sets the maximum number of expansions a single Plan call
// will perform before giving up.
func WithExpansionCap(n uint64) Option {
	return func(o *Options) { o.ExpansionCap = n }
}

// DefaultOptions returns the Options a Planner uses when no With* option
// overrides them: unweighted (w=1), a single worker, speculation off, and a
// 10000-expansion cap.
func DefaultOptions() Options {
	return Options{
		Weight:       1,
		Threads:      1,
		Speculation:  false,
		ExpansionCap: 10000,
	}
}

// Result is the outcome of a single Plan call.
type Result struct {
	// Path is the sequence of direction indices (each in [0,8)) that, applied
	// in order from the start, reproduces the planned trajectory.
	Path []int
	// Cost is the total movement cost of Path (the g-value of the final node).
	Cost float64
	// Expansions is the number of nodes popped and processed.
	Expansions uint64
	// Reached is true iff the search stopped at its goal test. The expansion
	// cap is checked before the goal test, so a plan whose last allowed
	// expansion pops the goal reports false. When false, Path is the partial
	// trajectory to whichever node was last popped when the search was cut
	// off by the expansion cap or open-list exhaustion —
	// useful for diagnostics, not a meaningful plan (spec.md §9 Open Question).
	Reached bool
}

// Planner runs weighted A* searches over a fixed grid.Map, reusing its
// worker pool, node arena, open list and per-cell tables across repeated
// Plan calls.
type Planner struct {
	m     *grid.Map
	opts  Options
	pool  *workerpool.Pool
	state *searchState
	nodes arena
	open  openList
}

// New creates a Planner over m. The returned Planner owns a worker pool
// sized by WithThreads (default 1) and must be Closed when no longer needed.
func New(m *grid.Map, opts ...Option) *Planner {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	return &Planner{
		m:     m,
		opts:  cfg,
		pool:  workerpool.New(cfg.Threads),
		state: newSearchState(m.Height(), m.Width()),
	}
}

// Close releases the Planner's worker pool.
func (p *Planner) Close() {
	p.pool.Close()
}

// Plan searches for a path from start to goal. It returns one of
// ErrStartInfeasible, ErrStartOccupied, ErrGoalInfeasible or
// ErrGoalOccupied if the corresponding precondition from spec.md §4.3 is
// violated — a caller bug, not a planning failure. If ctx is cancelled
// while a plan is in flight, Plan returns the best partial Result found so
// far together with ctx.Err().
func (p *Planner) Plan(ctx context.Context, start, goal Point) (Result, error) {
	if !p.m.Feasible(start.X, start.Y) {
		return Result{}, ErrStartInfeasible
	}
	if !p.m.Free(start.X, start.Y) {
		return Result{}, ErrStartOccupied
	}
	if !p.m.Feasible(goal.X, goal.Y) {
		return Result{}, ErrGoalInfeasible
	}
	if !p.m.Free(goal.X, goal.Y) {
		return Result{}, ErrGoalOccupied
	}

	p.state.beginPlan()
	p.nodes.reset()
	p.open.reset()

	startF := p.opts.Weight * heuristic(start.X, start.Y, goal.X, goal.Y)
	startIdx := p.nodes.add(node{x: start.X, y: start.Y, g: 0, f: startF, parent: noParent, incomingDir: -1})
	p.state.setG(start.X, start.Y, 0, startIdx)
	p.open.push(startIdx, startF)

	var expansions uint64
	lastIdx := startIdx

	for {
		select {
		case <-ctx.Done():
			return p.result(lastIdx, expansions, false), ctx.Err()
		default:
		}

		curIdx, ok := p.open.popMin()
		if !ok {
			return p.result(lastIdx, expansions, false), nil
		}
		cur := *p.nodes.get(curIdx)
		if p.state.visited(cur.x, cur.y) {
			continue // stale duplicate
		}
		p.state.setVisited(cur.x, cur.y)
		expansions++
		lastIdx = curIdx

		if expansions >= p.opts.ExpansionCap {
			return p.result(curIdx, expansions, false), nil
		}
		if cur.x == goal.X && cur.y == goal.Y {
			return p.result(curIdx, expansions, true), nil
		}

		p.expand(ctx, cur, curIdx, goal)
	}
}

// expand performs steps 5-7 of the main loop for the just-popped node cur:
// schedule neighbor collision checks, optionally speculate ahead, then
// collect results and relax successors.
func (p *Planner) expand(ctx context.Context, cur node, curIdx int, goal Point) {
	var freshHandles [8]*workerpool.Handle
	var survives [8]bool
	outstanding := 0

	for d := 0; d < 8; d++ {
		xx := cur.x + direction[d][0]
		yy := cur.y + direction[d][1]
		if !p.m.Feasible(xx, yy) || p.state.visited(xx, yy) {
			continue
		}
		survives[d] = true
		if !p.state.scoreboarded(xx, yy) {
			x, y := xx, yy
			h := p.pool.Submit(func() bool { return p.m.Free(x, y) })
			freshHandles[d] = h
			outstanding++
		}
	}

	if p.opts.Speculation && outstanding > 0 && cur.incomingDir >= 0 {
		budget := p.opts.Threads - outstanding
		speculate(p.m, p.pool, p.state, cur, budget)
	}

	for d := 0; d < 8; d++ {
		if !survives[d] {
			continue
		}
		xx := cur.x + direction[d][0]
		yy := cur.y + direction[d][1]

		h := freshHandles[d]
		if h == nil {
			h = p.state.handleAt(xx, yy)
		}
		if !h.Await(ctx) {
			continue
		}

		gPrime := cur.g + moveCost[d]
		if gPrime >= p.state.gCost(xx, yy) {
			continue
		}
		fPrime := gPrime + p.opts.Weight*heuristic(xx, yy, goal.X, goal.Y)
		newIdx := p.nodes.add(node{x: xx, y: yy, g: gPrime, f: fPrime, parent: curIdx, incomingDir: d})
		p.state.setG(xx, yy, gPrime, newIdx)
		p.open.push(newIdx, fPrime)
	}
}

func (p *Planner) result(idx int, expansions uint64, reached bool) Result {
	n := p.nodes.get(idx)
	return Result{
		Path:       p.nodes.path(idx),
		Cost:       n.g,
		Expansions: expansions,
		Reached:    reached,
	}
}
