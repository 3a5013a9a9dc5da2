package rastar

import "errors"

// Sentinel errors returned by Planner.Plan. All four name a precondition
// violation — a caller bug per spec.md §4.3/§7 — rather than a planning
// failure; a plan that simply can't reach the goal is reported through
// Result.Reached, never as an error.
var (
	// ErrStartInfeasible indicates the start cell's footprint does not lie
	// entirely within the map.
	ErrStartInfeasible = errors.New("rastar: start is not feasible")

	// ErrStartOccupied indicates the start cell's footprint overlaps an
	// obstacle.
	ErrStartOccupied = errors.New("rastar: start is not free")

	// ErrGoalInfeasible indicates the goal cell's footprint does not lie
	// entirely within the map.
	ErrGoalInfeasible = errors.New("rastar: goal is not feasible")

	// ErrGoalOccupied indicates the goal cell's footprint overlaps an
	// obstacle.
	ErrGoalOccupied = errors.New("rastar: goal is not free")
)
