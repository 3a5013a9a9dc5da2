package rastar

import "container/heap"

// openItem is one entry in the open list: a reference to a node in the
// arena plus the ordering key. f and seq are snapshotted at push time so the
// heap never has to dereference the arena to order itself.
type openItem struct {
	nodeIdx int
	f       float64
	seq     uint64
}

// openList is a min-heap over f, ties broken by insertion order (the
// Design Notes in spec.md §9 leave tie-breaking unspecified and require an
// implementation to pin one down for deterministic testing; FIFO on equal f
// is what this package chooses).
type openList struct {
	items []openItem
	seq   uint64
}

func (o *openList) reset() {
	o.items = o.items[:0]
	o.seq = 0
}

func (o *openList) push(nodeIdx int, f float64) {
	heap.Push(o, openItem{nodeIdx: nodeIdx, f: f, seq: o.seq})
	o.seq++
}

// popMin removes and returns the minimum-f item's node index. The second
// return value is false if the list was empty.
func (o *openList) popMin() (int, bool) {
	if len(o.items) == 0 {
		return 0, false
	}
	it := heap.Pop(o).(openItem)
	return it.nodeIdx, true
}

func (o *openList) empty() bool { return len(o.items) == 0 }

// heap.Interface implementation.

func (o *openList) Len() int { return len(o.items) }

func (o *openList) Less(i, j int) bool {
	if o.items[i].f != o.items[j].f {
		return o.items[i].f < o.items[j].f
	}
	return o.items[i].seq < o.items[j].seq
}

func (o *openList) Swap(i, j int) { o.items[i], o.items[j] = o.items[j], o.items[i] }

func (o *openList) Push(x any) { o.items = append(o.items, x.(openItem)) }

func (o *openList) Pop() any {
	old := o.items
	n := len(old)
	it := old[n-1]
	o.items = old[:n-1]
	return it
}
