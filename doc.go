// Package rastar implements a weighted A* search for a rectangular robot on
// a 2-D grid of axis-aligned rectangular obstacles, parallelized by
// offloading per-neighbor collision checks to a worker pool and, optionally,
// by speculatively prefetching checks for cells the search predicts it will
// soon expand.
//
// The package exposes a single entry point, Planner.Plan, which mirrors the
// semantics of a sequential weighted A*: the expansion order never changes
// under parallelism, only the evaluation of edges does. See grid for the
// map/obstacle model Plan consumes and workerpool for the collision-check
// executor it drives.
package rastar
