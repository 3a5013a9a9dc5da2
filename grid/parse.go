package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RawMap is the parsed, un-validated contents of a map file: dimensions plus
// the obstacle list, before a robot footprint is attached via New.
type RawMap struct {
	Height, Width int
	Obstacles     []Rect
}

// ParseFile reads the plain-text map file format:
//
//	height <H>
//	width <W>
//	X Y Length Width
//	<x> <y> <l> <w>
//	...
//
// The three header lines are literal and must appear in that order; a
// missing or malformed header is a configuration error. Once the header is
// read, each subsequent line must be four whitespace-separated non-negative
// integers; parsing stops (without error) at the first line that isn't,
// returning whatever obstacles were read so far.
func ParseFile(path string) (*RawMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open map file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse is the io.Reader-based counterpart of ParseFile, used directly by
// tests and any caller that already has the map data in memory.
func Parse(r io.Reader) (*RawMap, error) {
	sc := bufio.NewScanner(r)

	height, err := readHeaderInt(sc, "height")
	if err != nil {
		return nil, err
	}
	width, err := readHeaderInt(sc, "width")
	if err != nil {
		return nil, err
	}
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "X Y Length Width" {
		return nil, ErrMissingColumnHeader
	}

	rm := &RawMap{Height: height, Width: width}
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			break
		}
		vals := make([]int, 4)
		ok := true
		for i, tok := range fields {
			v, perr := strconv.Atoi(tok)
			if perr != nil || v < 0 {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			break
		}
		rm.Obstacles = append(rm.Obstacles, Rect{X: vals[0], Y: vals[1], Length: vals[2], Width: vals[3]})
	}

	return rm, nil
}

// readHeaderInt consumes one line of the form "<name> <int>" and returns the
// integer, or a sentinel error naming which header line was unparseable.
func readHeaderInt(sc *bufio.Scanner, name string) (int, error) {
	var missing error
	switch name {
	case "height":
		missing = ErrMissingHeight
	case "width":
		missing = ErrMissingWidth
	}

	if !sc.Scan() {
		return 0, missing
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 || fields[0] != name {
		return 0, missing
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, missing
	}

	return v, nil
}
