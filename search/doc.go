// Package search runs seven classical search strategies — A*, Greedy
// Best-First, Uniform Cost, Breadth-First, Depth-First, Depth-Limited, and
// Iterative Deepening — through one generic expansion loop over the sliding
// puzzle's state graph.
//
// What
//
//   - Solve(start, goal, strategy, opts...) drives INIT → RUNNING →
//     {SOLVED, EXHAUSTED, CUTOFF} and returns a Result with the move path,
//     its cost and depth, and the invocation's Stats.
//   - The strategies differ only in frontier discipline (priority heap,
//     FIFO queue, LIFO stack) and visited policy (cost-aware for A*/UCS,
//     set-based for Greedy/BFS/DFS, depth-aware for DLS, fresh per IDS
//     iteration); the loop, counters, and tie-break rule are shared, so
//     statistics are comparable across strategies.
//   - A Tracer installed with WithTracer receives an Init snapshot plus one
//     event per expansion carrying the popped node, the pushed successors
//     count, a fringe snapshot, and the running counters — the raw material
//     for trace-dump writers.
//
// Determinism
//
//	Successor generation order is fixed (puzzle package contract), heap
//	ties break FIFO by insertion sequence, and LIFO disciplines push
//	successors in reverse so the first-generated is expanded first.
//	Repeated runs of the same strategy on the same instance therefore
//	produce identical move sequences and identical statistics.
//
// Counter conventions
//
//	The root counts as popped but never as generated; NodesGenerated counts
//	every successor produced, including filtered ones; MaxFringeSize starts
//	at 1 and is re-sampled after each expansion's pushes; IDS accumulates
//	counters across iterations. Hence
//
//	    NodesExpanded ≤ NodesPopped ≤ NodesGenerated + 1.
//
// Termination
//
//	Failure to find a goal is not an error: an empty frontier yields
//	StatusExhausted, or StatusCutoff when a depth limit pruned at least one
//	node (DLS, and IDS that ran out of limits). Memory is unbounded by
//	design for the exhaustive strategies; callers needing bounds should
//	pick DLS/IDS or set WithNodeBudget / WithContext.
//
// Complexity (b ≤ 4 branching, d solution depth)
//
//   - Time:   O(b^d) node expansions, times O(9) per successor.
//   - Memory: O(nodes generated) — the arena retains every node of the
//     iteration so parent links stay valid handles.
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidGoal   for malformed boards.
//   - ErrUnknownStrategy                 for names or values outside the set.
//   - ErrDepthLimitRequired              for DLS without WithDepthLimit.
//   - ErrOptionViolation                 for invalid option arguments.
//   - The context's error when WithContext is canceled mid-run.
package search
