package search

import (
	"fmt"

	"expense8/heuristic"
	"expense8/puzzle"
)

// node is one arena entry of the search tree. Parent links are arena indices
// (noParent for the root), so nodes never own each other and path
// reconstruction is an index walk.
type node struct {
	state  puzzle.State
	move   puzzle.Move // zero for the root
	parent nodeID
	cost   int // g: accumulated move expense from the root
	depth  int // moves from the root; independent of cost
}

// Solve searches from start to goal under the given strategy.
//
// Errors are returned only for invalid invocations: malformed states, an
// unknown strategy, DLS without WithDepthLimit, option violations, or a
// canceled context. A search that terminates without finding the goal is a
// valid outcome reported through Result.Status (StatusExhausted or
// StatusCutoff), never an error.
func Solve(start, goal puzzle.State, strategy Strategy, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStart, err)
	}
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
	}
	if int(strategy) >= len(strategyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(strategy))
	}
	if strategy == DLS && o.DepthLimit < 0 {
		return nil, ErrDepthLimitRequired
	}

	// Optional fast pre-check: start and goal in different parity classes
	// can never meet, so skip the (otherwise exhaustive) search entirely.
	if o.ParityCheck && !puzzle.Solvable(start, goal) {
		return &Result{Status: StatusExhausted}, nil
	}

	if strategy == IDS {
		return solveIDS(start, goal, &o)
	}

	r, err := newRunner(goal, strategy, &o)
	if err != nil {
		return nil, err
	}
	if strategy == DLS {
		r.depthLimit = o.DepthLimit
	}

	return r.run(start)
}

// solveIDS drives depth-limited iterations with limits 0, 1, 2, … up to
// Options.MaxDepthLimit, fresh frontier and visited set each round.
// Statistics accumulate across iterations; MaxFringeSize is the maximum
// observed in any iteration. An iteration that exhausts its frontier
// without hitting the limit proves the whole reachable component was
// covered, so deeper limits are pointless and the loop stops early.
func solveIDS(start, goal puzzle.State, o *Options) (*Result, error) {
	var total Stats
	for limit := 0; limit <= o.MaxDepthLimit; limit++ {
		r, err := newRunner(goal, DLS, o)
		if err != nil {
			return nil, err
		}
		r.depthLimit = limit
		if o.NodeBudget > 0 {
			remaining := o.NodeBudget - total.NodesPopped
			if remaining <= 0 {
				return &Result{Status: StatusExhausted, Stats: total}, nil
			}
			r.budget = remaining
		}

		res, err := r.run(start)
		if err != nil {
			return nil, err
		}

		total.NodesPopped += res.Stats.NodesPopped
		total.NodesExpanded += res.Stats.NodesExpanded
		total.NodesGenerated += res.Stats.NodesGenerated
		if res.Stats.MaxFringeSize > total.MaxFringeSize {
			total.MaxFringeSize = res.Stats.MaxFringeSize
		}

		if res.Status == StatusSolved {
			res.Stats = total
			return res, nil
		}
		if res.Status == StatusExhausted {
			return &Result{Status: StatusExhausted, Stats: total}, nil
		}
	}

	return &Result{Status: StatusCutoff, Stats: total}, nil
}

// runner holds the mutable state of one search iteration. All of it is
// exclusively owned by the invocation; nothing is shared or reused.
type runner struct {
	goal     puzzle.State
	strategy Strategy
	opts     *Options
	heur     *heuristic.WeightedManhattan // A* and Greedy only

	depthLimit int // ≥ 0 activates the DLS cutoff
	budget     int // > 0 aborts after that many pops

	arena []node
	fr    frontier

	// visited-state tracking; exactly one of these is non-nil, per strategy
	visited   map[puzzle.State]bool // Greedy, BFS, DFS: seen at all
	bestCost  map[puzzle.State]int  // A*, UCS: cheapest expanded cost
	bestDepth map[puzzle.State]int  // DLS: shallowest expanded depth

	pruned bool // a depth cutoff suppressed at least one expansion
	stats  Stats
}

// newRunner wires the frontier discipline, visited policy, and (for informed
// strategies) the heuristic table for one iteration.
func newRunner(goal puzzle.State, strategy Strategy, o *Options) (*runner, error) {
	r := &runner{
		goal:       goal,
		strategy:   strategy,
		opts:       o,
		depthLimit: -1,
		budget:     o.NodeBudget,
		fr:         newFrontier(strategy),
	}

	switch strategy {
	case AStar, UCS:
		r.bestCost = make(map[puzzle.State]int)
	case DLS:
		r.bestDepth = make(map[puzzle.State]int)
	default:
		r.visited = make(map[puzzle.State]bool)
	}

	if strategy == AStar || strategy == Greedy {
		h, err := heuristic.New(goal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
		}
		r.heur = h
	}

	return r, nil
}

// run executes the expansion loop: INIT → RUNNING → {SOLVED, EXHAUSTED, CUTOFF}.
func (r *runner) run(start puzzle.State) (*Result, error) {
	rootID := r.addNode(node{state: start, parent: noParent})
	r.fr.push(rootID, r.priority(r.arena[rootID]))
	r.stats.MaxFringeSize = 1
	r.traceInit(start)

	for {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}
		if r.budget > 0 && r.stats.NodesPopped >= r.budget {
			return r.terminal(StatusExhausted), nil
		}

		id, ok := r.fr.pop()
		if !ok {
			break
		}
		// value copy: the arena backing array may move when successors append
		n := r.arena[id]
		r.stats.NodesPopped++

		if n.state == r.goal {
			return r.solved(id, n), nil
		}
		if r.seen(n) {
			// stale frontier duplicate: popped, but neither expanded nor re-marked
			continue
		}
		if r.depthLimit >= 0 && n.depth >= r.depthLimit {
			r.pruned = true
			continue
		}

		r.mark(n)
		r.stats.NodesExpanded++
		pushed := r.expand(id, n)
		r.traceExpand(id, pushed)
	}

	if r.pruned {
		return r.terminal(StatusCutoff), nil
	}

	return r.terminal(StatusExhausted), nil
}

// expand generates successors of n, filters already-visited states, pushes
// the rest, and re-samples MaxFringeSize. Returns the number pushed.
func (r *runner) expand(parent nodeID, n node) int {
	succs := n.state.Successors()
	kids := make([]nodeID, 0, len(succs))
	for _, sc := range succs {
		r.stats.NodesGenerated++
		g := n.cost + sc.Cost
		if r.seenChild(sc.State, g, n.depth+1) {
			continue
		}
		kids = append(kids, r.addNode(node{
			state:  sc.State,
			move:   sc.Move,
			parent: parent,
			cost:   g,
			depth:  n.depth + 1,
		}))
	}

	// LIFO disciplines push in reverse so the first-generated successor is
	// the first expanded, keeping DFS/DLS traces aligned with the fixed
	// successor order.
	if r.strategy == DFS || r.strategy == DLS {
		for i, j := 0, len(kids)-1; i < j; i, j = i+1, j-1 {
			kids[i], kids[j] = kids[j], kids[i]
		}
	}
	for _, k := range kids {
		r.fr.push(k, r.priority(r.arena[k]))
	}

	if s := r.fr.size(); s > r.stats.MaxFringeSize {
		r.stats.MaxFringeSize = s
	}

	return len(kids)
}

// addNode appends n to the arena and returns its handle.
func (r *runner) addNode(n node) nodeID {
	r.arena = append(r.arena, n)

	return nodeID(len(r.arena) - 1)
}

// priority computes the frontier ordering key: f = g + h for A*, h for
// Greedy, g for UCS, depth for BFS (informational; FIFO ignores it), and 0
// for the LIFO disciplines.
func (r *runner) priority(n node) int {
	switch r.strategy {
	case AStar:
		return n.cost + r.heur.Estimate(n.state)
	case Greedy:
		return r.heur.Estimate(n.state)
	case UCS:
		return n.cost
	case BFS:
		return n.depth
	default:
		return 0
	}
}

// seen implements the per-strategy visited policy at pop time.
func (r *runner) seen(n node) bool {
	switch r.strategy {
	case AStar, UCS:
		c, ok := r.bestCost[n.state]
		return ok && c <= n.cost
	case DLS:
		d, ok := r.bestDepth[n.state]
		return ok && d <= n.depth
	default:
		return r.visited[n.state]
	}
}

// seenChild filters successors against the same policy before pushing.
func (r *runner) seenChild(s puzzle.State, cost, depth int) bool {
	switch r.strategy {
	case AStar, UCS:
		c, ok := r.bestCost[s]
		return ok && c <= cost
	case DLS:
		d, ok := r.bestDepth[s]
		return ok && d <= depth
	default:
		return r.visited[s]
	}
}

// mark records n's state as expanded. Callers invoke it only after seen
// returned false, so a plain store always tightens the recorded bound.
func (r *runner) mark(n node) {
	switch r.strategy {
	case AStar, UCS:
		r.bestCost[n.state] = n.cost
	case DLS:
		r.bestDepth[n.state] = n.depth
	default:
		r.visited[n.state] = true
	}
}

// closedSize reports how many distinct states have been expanded.
func (r *runner) closedSize() int {
	switch r.strategy {
	case AStar, UCS:
		return len(r.bestCost)
	case DLS:
		return len(r.bestDepth)
	default:
		return len(r.visited)
	}
}

// solved reconstructs the root-to-goal move sequence by walking parent
// handles, then reverses it.
func (r *runner) solved(id nodeID, n node) *Result {
	moves := make([]puzzle.Move, 0, n.depth)
	for cur := id; r.arena[cur].parent != noParent; cur = r.arena[cur].parent {
		moves = append(moves, r.arena[cur].move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return &Result{
		Status: StatusSolved,
		Moves:  moves,
		Cost:   n.cost,
		Depth:  n.depth,
		Stats:  r.stats,
	}
}

// terminal packages a non-solved outcome with the statistics collected so far.
func (r *runner) terminal(status Status) *Result {
	return &Result{Status: status, Stats: r.stats}
}
