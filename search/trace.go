package search

import "expense8/puzzle"

// TraceNode is a read-only view of one search-tree node, materialized for
// tracing. Parent is the parent's state (nil for the root); Priority is the
// frontier ordering key at materialization time.
type TraceNode struct {
	State    puzzle.State
	Move     puzzle.Move // zero value when Root
	Root     bool
	Cost     int
	Depth    int
	Priority int
	Parent   *puzzle.State
}

// TraceStep is one engine event: the initialization snapshot, or one
// expansion with its resulting fringe.
type TraceStep struct {
	// Expanded is the node just expanded; zero value on the Init event.
	Expanded TraceNode
	// Generated is the number of successors pushed (post-filter).
	Generated int
	// Fringe is the frontier contents after this step, in container order
	// (heap order for the priority strategies, not sorted by priority).
	Fringe []TraceNode
	// ClosedSize is the number of distinct states expanded so far.
	ClosedSize int
	// Stats are the running counters after this step.
	Stats Stats
	// DepthLimit is the active cutoff, or -1 when no limit applies. IDS
	// emits one Init per iteration with the iteration's limit.
	DepthLimit int
}

// Tracer receives the engine's event stream. Implementations must not
// retain the Fringe slice across calls; everything else is by value.
// A Tracer is installed with WithTracer and costs nothing when absent.
type Tracer interface {
	// Init fires once per search iteration, after the root is pushed.
	Init(start, goal puzzle.State, step TraceStep)
	// Expand fires after each expansion's successors have been pushed.
	Expand(step TraceStep)
}

// traceInit emits the initialization event when a Tracer is installed.
func (r *runner) traceInit(start puzzle.State) {
	if r.opts.Tracer == nil {
		return
	}
	r.opts.Tracer.Init(start, r.goal, TraceStep{
		Fringe:     r.traceFringe(),
		Stats:      r.stats,
		DepthLimit: r.depthLimit,
	})
}

// traceExpand emits one expansion event when a Tracer is installed.
func (r *runner) traceExpand(id nodeID, pushed int) {
	if r.opts.Tracer == nil {
		return
	}
	r.opts.Tracer.Expand(TraceStep{
		Expanded:   r.traceNode(id),
		Generated:  pushed,
		Fringe:     r.traceFringe(),
		ClosedSize: r.closedSize(),
		Stats:      r.stats,
		DepthLimit: r.depthLimit,
	})
}

// traceNode materializes the view of one arena entry.
func (r *runner) traceNode(id nodeID) TraceNode {
	n := r.arena[id]
	tn := TraceNode{
		State:    n.state,
		Move:     n.move,
		Root:     n.parent == noParent,
		Cost:     n.cost,
		Depth:    n.depth,
		Priority: r.priority(n),
	}
	if n.parent != noParent {
		parentState := r.arena[n.parent].state
		tn.Parent = &parentState
	}

	return tn
}

// traceFringe materializes the current frontier contents.
func (r *runner) traceFringe() []TraceNode {
	ids := r.fr.snapshot()
	out := make([]TraceNode, len(ids))
	for i, id := range ids {
		out[i] = r.traceNode(id)
	}

	return out
}
