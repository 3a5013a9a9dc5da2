// Package workerpool runs pure, side-effect-free boolean-valued tasks
// concurrently and hands back a shared lazy Handle for each one, the way
// the rastar engine's collision checks (grid.Map.Free) are offloaded and
// later awaited during the collect-and-relax phase of an expansion.
//
// The pool never assumes a particular scheduling order between submissions;
// it only guarantees every task submitted before Close eventually runs
// exactly once.
package workerpool

type job struct {
	fn     func() bool
	handle *Handle
}

// Pool is a bounded set of worker goroutines draining a single shared job
// queue, mirroring the single-channel-many-workers shape the expansion
// workers use in the teacher implementation this package generalizes from.
type Pool struct {
	jobs chan job
	done chan struct{}
}

// New starts a pool of threads worker goroutines. threads <= 1 still starts
// exactly one background worker (tasks run on it, not on the caller of
// Submit); this is the realization of the "single-threaded degenerate pool" the search
// engine treats as its reference implementation for threads == 1.
func New(threads int) *Pool {
	if threads < 1 {
		threads = 1
	}
	p := &Pool{
		jobs: make(chan job),
		done: make(chan struct{}),
	}
	for i := 0; i < threads; i++ {
		go p.run()
	}

	return p
}

func (p *Pool) run() {
	for {
		select {
		case j := <-p.jobs:
			j.handle.complete(j.fn())
		case <-p.done:
			return
		}
	}
}

// Submit hands fn to the pool for execution and returns a Handle for its
// eventual result. fn must be pure and side-effect-free; it may run on any
// worker goroutine at any later time. Submit blocks until some worker
// goroutine is free to accept the job; the queue is unbuffered.
func (p *Pool) Submit(fn func() bool) *Handle {
	h := newHandle()
	select {
	case <-p.done:
		h.complete(false)
		return h
	default:
	}
	select {
	case p.jobs <- job{fn: fn, handle: h}:
	case <-p.done:
		// Pool already shut down; complete the handle so an awaiter never
		// blocks forever on work that will now never run.
		h.complete(false)
	}

	return h
}

// Close stops all worker goroutines. In-flight handles that were never
// awaited are simply dropped, matching the engine's "no cancellation of
// outstanding work on plan termination" contract; handles already awaiting
// a dispatched job still complete normally.
func (p *Pool) Close() {
	close(p.done)
}
