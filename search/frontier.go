package search

import "container/heap"

// nodeID is an index into the invocation-owned node arena. The frontier and
// parent links hold nodeIDs rather than pointers, so the whole search tree
// lives in one slice and path reconstruction walks indices.
type nodeID int32

// noParent marks the root's parent link.
const noParent nodeID = -1

// frontier is the single axis of variation between the strategies' container
// disciplines: FIFO queue, LIFO stack, or priority heap.
type frontier interface {
	// push inserts id; priority is meaningful only for the heap discipline.
	push(id nodeID, priority int)
	// pop removes and returns the next node per the discipline.
	pop() (nodeID, bool)
	// size returns the current number of frontier entries.
	size() int
	// snapshot returns the current entries, in container order, for tracing.
	snapshot() []nodeID
}

// newFrontier selects the container discipline for a strategy. IDS never
// reaches here: its outer loop runs DLS iterations.
func newFrontier(s Strategy) frontier {
	switch s {
	case AStar, Greedy, UCS:
		return &heapFrontier{}
	case BFS:
		return &fifoFrontier{}
	default: // DFS, DLS
		return &lifoFrontier{}
	}
}

// fifoFrontier pops in insertion order (BFS).
type fifoFrontier struct {
	items []nodeID
	head  int
}

func (f *fifoFrontier) push(id nodeID, _ int) { f.items = append(f.items, id) }

func (f *fifoFrontier) pop() (nodeID, bool) {
	if f.head >= len(f.items) {
		return 0, false
	}
	id := f.items[f.head]
	f.head++
	// reclaim the drained prefix once it dominates the backing array
	if f.head > 1024 && f.head*2 >= len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}

	return id, true
}

func (f *fifoFrontier) size() int { return len(f.items) - f.head }

func (f *fifoFrontier) snapshot() []nodeID {
	out := make([]nodeID, f.size())
	copy(out, f.items[f.head:])

	return out
}

// lifoFrontier pops in reverse insertion order (DFS, DLS).
type lifoFrontier struct {
	items []nodeID
}

func (f *lifoFrontier) push(id nodeID, _ int) { f.items = append(f.items, id) }

func (f *lifoFrontier) pop() (nodeID, bool) {
	n := len(f.items)
	if n == 0 {
		return 0, false
	}
	id := f.items[n-1]
	f.items = f.items[:n-1]

	return id, true
}

func (f *lifoFrontier) size() int { return len(f.items) }

func (f *lifoFrontier) snapshot() []nodeID {
	out := make([]nodeID, len(f.items))
	copy(out, f.items)

	return out
}

// heapEntry pairs a node with its priority key and an insertion sequence
// number. The sequence breaks priority ties FIFO, which keeps heap pops
// fully deterministic: (priority, seq) is a total order.
type heapEntry struct {
	id       nodeID
	priority int
	seq      int
}

// entryHeap implements container/heap over heapEntry values.
type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(heapEntry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// heapFrontier pops the minimum (priority, seq) entry (A*, Greedy, UCS).
type heapFrontier struct {
	entries entryHeap
	seq     int
}

func (f *heapFrontier) push(id nodeID, priority int) {
	f.seq++
	heap.Push(&f.entries, heapEntry{id: id, priority: priority, seq: f.seq})
}

func (f *heapFrontier) pop() (nodeID, bool) {
	if len(f.entries) == 0 {
		return 0, false
	}
	entry := heap.Pop(&f.entries).(heapEntry)

	return entry.id, true
}

func (f *heapFrontier) size() int { return len(f.entries) }

// snapshot returns entries in internal heap order, not priority order.
func (f *heapFrontier) snapshot() []nodeID {
	out := make([]nodeID, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.id
	}

	return out
}
