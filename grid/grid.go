// Package grid models an immutable 2-D map of axis-aligned rectangular
// obstacles and answers feasibility/freeness queries for a rectangular robot
// footprint anchored at a grid cell.
//
// A Map is constructed once and never mutated afterwards: Feasible and Free
// are pure, reentrant functions of their (x, y) argument and are safe to call
// concurrently from any number of goroutines, which is what lets the rastar
// engine ship Free checks out to a worker pool.
package grid

// Rect is an axis-aligned rectangular obstacle anchored at (X, Y) with
// extents (Length, Width). It occupies the half-open region
// [X, X+Length) x [Y, Y+Width).
type Rect struct {
	X, Y          int
	Length, Width int
}

// Map is a read-only grid of dimensions Height x Width together with the set
// of obstacles on it and the footprint dimensions of the robot that will be
// planned over it.
type Map struct {
	height, width           int
	robotLength, robotWidth int
	obstacles               []Rect
}

// New constructs a Map. obstacles is copied so the caller may reuse or
// mutate its backing slice afterwards. Returns ErrInvalidDimensions if
// height, width, robotLength or robotWidth is not positive.
func New(height, width, robotLength, robotWidth int, obstacles []Rect) (*Map, error) {
	if height <= 0 || width <= 0 || robotLength <= 0 || robotWidth <= 0 {
		return nil, ErrInvalidDimensions
	}
	obs := make([]Rect, len(obstacles))
	copy(obs, obstacles)

	return &Map{
		height:      height,
		width:       width,
		robotLength: robotLength,
		robotWidth:  robotWidth,
		obstacles:   obs,
	}, nil
}

// Height returns the map's height (number of rows, the Y extent).
func (m *Map) Height() int { return m.height }

// Width returns the map's width (number of columns, the X extent).
func (m *Map) Width() int { return m.width }

// RobotLength returns the robot footprint's extent along X.
func (m *Map) RobotLength() int { return m.robotLength }

// RobotWidth returns the robot footprint's extent along Y.
func (m *Map) RobotWidth() int { return m.robotWidth }

// InBounds reports whether (x, y) is within [0, Width) x [0, Height), i.e.
// whether it names a real grid cell at all (a weaker test than Feasible).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Feasible reports whether the robot footprint anchored at (x, y) lies
// entirely within the map. Per the source contract this uses inclusive
// bounds: every (x+j, y+i) for i in [0, robotWidth], j in [0, robotLength]
// must be in-bounds, making the feasible footprint one cell larger in each
// dimension than the free-check footprint below. An anchor outside
// [0, width) x [0, height) is reported infeasible. Free does not check
// bounds; callers test Feasible first.
func (m *Map) Feasible(x, y int) bool {
	maxX := x + m.robotLength
	maxY := y + m.robotWidth

	return x >= 0 && y >= 0 && maxX < m.width && maxY < m.height
}

// Free reports whether the robot footprint's half-open region
// [x, x+robotLength) x [y, y+robotWidth) intersects no obstacle. Free is
// pure and reentrant: it is the only query the rastar engine ships to its
// worker pool.
func (m *Map) Free(x, y int) bool {
	robotMaxX := x + m.robotLength
	robotMaxY := y + m.robotWidth
	for _, r := range m.obstacles {
		if x < r.X+r.Length && robotMaxX > r.X && y < r.Y+r.Width && robotMaxY > r.Y {
			return false
		}
	}

	return true
}
