package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"expense8/puzzle"
	"expense8/search"
)

// separator closes each trace block.
var separator = strings.Repeat("-", 60)

// traceWriter renders the engine's event stream into the dump-file format:
// a header with the command line, an initialization snapshot, one block per
// expansion with the fringe after it, and a final statistics block.
type traceWriter struct {
	w        *bufio.Writer
	strategy search.Strategy
	args     []string
	started  bool
}

// newTraceWriter wraps out; the caller keeps ownership of the underlying
// file and must keep it open until writeResult has been called.
func newTraceWriter(out io.Writer, strategy search.Strategy, args []string) *traceWriter {
	return &traceWriter{
		w:        bufio.NewWriter(out),
		strategy: strategy,
		args:     args,
	}
}

// Init implements search.Tracer. IDS fires it once per iteration, so the
// command-line header is written only the first time.
func (t *traceWriter) Init(start, goal puzzle.State, step search.TraceStep) {
	if !t.started {
		t.started = true
		fmt.Fprintf(t.w, "Command-Line Arguments: %v\n", t.args)
		fmt.Fprintf(t.w, "Initial state:\n%s\n", start)
		fmt.Fprintf(t.w, "Goal state:\n%s\n", goal)
	}

	label := t.strategy.String()
	if t.strategy == search.IDS {
		label = fmt.Sprintf("%s (limit=%d)", label, step.DepthLimit)
	} else if step.DepthLimit >= 0 {
		label = fmt.Sprintf("%s (limit=%d)", label, step.DepthLimit)
	}
	fmt.Fprintf(t.w, "Running %s\n", label)
	fmt.Fprintln(t.w, "After Initialization")
	t.writeSnapshot(step)
}

// Expand implements search.Tracer.
func (t *traceWriter) Expand(step search.TraceStep) {
	fmt.Fprintf(t.w, "Generating successors to %s:\n", formatNode(step.Expanded))
	fmt.Fprintf(t.w, "\t%d successors generated\n", step.Generated)
	t.writeSnapshot(step)
}

// writeResult appends the terminal outcome and flushes.
func (t *traceWriter) writeResult(res *search.Result) error {
	fmt.Fprintf(t.w, "Search finished: %s\n", res.Status)
	if res.Solved() {
		fmt.Fprintf(t.w, "\tSolution depth: %d\n", res.Depth)
		fmt.Fprintf(t.w, "\tSolution cost: %d\n", res.Cost)
	}
	t.writeStats(res.Stats)

	return t.w.Flush()
}

// writeSnapshot renders the fringe, closed-set size, and counters.
func (t *traceWriter) writeSnapshot(step search.TraceStep) {
	fmt.Fprintln(t.w, "\tFringe: [")
	for _, tn := range step.Fringe {
		fmt.Fprintf(t.w, "\t\t%s\n", formatNode(tn))
	}
	fmt.Fprintln(t.w, "\t]")
	fmt.Fprintf(t.w, "\tClosed: %d states\n", step.ClosedSize)
	t.writeStats(step.Stats)
	fmt.Fprintln(t.w, separator)
}

func (t *traceWriter) writeStats(s search.Stats) {
	fmt.Fprintf(t.w, "\tNodes Popped: %d\n", s.NodesPopped)
	fmt.Fprintf(t.w, "\tNodes Expanded: %d\n", s.NodesExpanded)
	fmt.Fprintf(t.w, "\tNodes Generated: %d\n", s.NodesGenerated)
	fmt.Fprintf(t.w, "\tMax Fringe Size: %d\n", s.MaxFringeSize)
}

// formatNode renders one node view on a single line, e.g.
//
//	< state = [[1 2 3] [4 0 5] [7 8 6]], action = {Start}, g(n) = 0, d(n) = 0, f(n) = 11, parent = {none} >
func formatNode(tn search.TraceNode) string {
	action := "Start"
	if !tn.Root {
		action = tn.Move.String()
	}
	parent := "{none}"
	if tn.Parent != nil {
		parent = fmt.Sprintf("%v", tn.Parent.Grid())
	}

	return fmt.Sprintf("< state = %v, action = {%s}, g(n) = %d, d(n) = %d, f(n) = %d, parent = %s >",
		tn.State.Grid(), action, tn.Cost, tn.Depth, tn.Priority, parent)
}
