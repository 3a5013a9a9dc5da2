package grid

import "errors"

// Sentinel errors returned by the grid package.
var (
	// ErrInvalidDimensions indicates a non-positive map height/width or a
	// non-positive robot footprint dimension was supplied to New.
	ErrInvalidDimensions = errors.New("grid: height, width and robot extents must be positive")

	// ErrMissingHeight indicates the map file has no "height <H>" header line.
	ErrMissingHeight = errors.New("grid: map file missing \"height\" header")

	// ErrMissingWidth indicates the map file has no "width <W>" header line
	// immediately following the height line.
	ErrMissingWidth = errors.New("grid: map file missing \"width\" header")

	// ErrMissingColumnHeader indicates the map file is missing the literal
	// "X Y Length Width" column-header line.
	ErrMissingColumnHeader = errors.New("grid: map file missing \"X Y Length Width\" header")
)
