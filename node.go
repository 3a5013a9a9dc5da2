package rastar

// noParent marks a node with no predecessor (the start node).
const noParent = -1

// node is one record in the search's node arena: a DAG rooted at the start,
// addressed by integer index rather than pointer so path reconstruction and
// the open list never need to chase live pointers into a garbage-collected
// graph (see spec.md §9, "dynamic allocation ... model it as an arena of
// node records with integer parent indices").
type node struct {
	x, y        int
	g, f        float64
	parent      int // index into the arena, or noParent
	incomingDir int // direction index in [0,8) that produced this node, or -1 for the start
}

// arena is an append-only store of nodes for a single plan, reused (by
// truncation) across repeated Plan calls on the same Planner to avoid
// reallocating on every search.
type arena struct {
	nodes []node
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
}

// add appends a new node and returns its index.
func (a *arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) get(idx int) *node {
	return &a.nodes[idx]
}

// path walks parent pointers from idx back to the start, reverses them, and
// drops the leading sentinel direction (the start node's incomingDir, which
// is always -1 and names no real move).
func (a *arena) path(idx int) []int {
	var dirs []int
	for idx != noParent {
		n := &a.nodes[idx]
		if n.incomingDir >= 0 {
			dirs = append(dirs, n.incomingDir)
		}
		idx = n.parent
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}

	return dirs
}
