// Package search defines the strategy vocabulary, sentinel errors, tunable
// options, and result types for the generic puzzle search engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense8/puzzle"
)

// Sentinel errors for engine invocation. Terminal search outcomes
// (exhaustion, depth cutoff) are Result statuses, never errors.
var (
	// ErrUnknownStrategy is returned for a Strategy value or name outside the
	// closed set {A*, Greedy, UCS, BFS, DFS, DLS, IDS}.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrInvalidStart is returned when the start state fails validation.
	ErrInvalidStart = errors.New("search: invalid start state")

	// ErrInvalidGoal is returned when the goal state fails validation.
	ErrInvalidGoal = errors.New("search: invalid goal state")

	// ErrDepthLimitRequired is returned when DLS runs without WithDepthLimit.
	ErrDepthLimitRequired = errors.New("search: depth-limited search requires a depth limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Strategy selects the frontier discipline and visited policy; it is the one
// axis of variation across the seven algorithms.
type Strategy uint8

const (
	// AStar orders the frontier by f = g + h, ascending.
	AStar Strategy = iota
	// Greedy orders the frontier by h alone, ascending.
	Greedy
	// UCS orders the frontier by accumulated cost g, ascending.
	UCS
	// BFS pops in insertion order (FIFO queue).
	BFS
	// DFS pops in reverse insertion order (LIFO stack).
	DFS
	// DLS is DFS with a depth cutoff; requires WithDepthLimit.
	DLS
	// IDS repeats DLS with limits 0, 1, 2, … up to WithMaxDepthLimit.
	IDS
)

// strategyNames is indexed by Strategy and doubles as the CLI spelling table.
var strategyNames = [...]string{"a*", "greedy", "ucs", "bfs", "dfs", "dls", "ids"}

// String returns the canonical lowercase spelling, e.g. "a*".
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy maps a method name to its Strategy, case-insensitively.
// Accepted spellings: a*, greedy, ucs, bfs, dfs, dls, ids.
func ParseStrategy(name string) (Strategy, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == lower {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Status is the terminal state of a finished search.
type Status uint8

const (
	// StatusSolved means a goal node was popped; the Result carries its path.
	StatusSolved Status = iota
	// StatusExhausted means the frontier emptied (or a node budget aborted
	// the run) without reaching the goal and without any depth pruning.
	StatusExhausted
	// StatusCutoff means the frontier emptied while a depth limit pruned at
	// least one node, so deeper solutions may exist (DLS, capped IDS).
	StatusCutoff
)

// statusNames is indexed by Status.
var statusNames = [...]string{"solved", "exhausted", "cutoff"}

// String returns the lowercase status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Stats is the counter set owned by one search invocation.
//
// Conventions, uniform across all seven strategies: the root is counted as
// popped but never as generated; NodesGenerated counts every successor
// produced, including ones filtered by the visited policy before pushing;
// MaxFringeSize starts at 1 and is re-sampled after each expansion's pushes.
// Hence NodesExpanded ≤ NodesPopped ≤ NodesGenerated + 1. For IDS the
// counters accumulate across iterations and MaxFringeSize is the maximum
// over iterations.
type Stats struct {
	NodesPopped    int
	NodesExpanded  int
	NodesGenerated int
	MaxFringeSize  int
}

// Result is the outcome of one search invocation.
type Result struct {
	// Status tells how the run terminated.
	Status Status
	// Moves is the solution path, root to goal, empty unless Status is
	// StatusSolved (and empty when start equals goal).
	Moves []puzzle.Move
	// Cost is the accumulated move expense of the solution path.
	Cost int
	// Depth is the number of moves on the solution path.
	Depth int
	// Stats carries the counters collected up to termination.
	Stats Stats
}

// Solved reports whether the search reached the goal.
func (r *Result) Solved() bool { return r.Status == StatusSolved }

// DefaultMaxDepthLimit caps the IDS outer loop when WithMaxDepthLimit is not
// supplied. Exceeding it is reported as StatusCutoff, not an error.
const DefaultMaxDepthLimit = 1000

// Option configures engine behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Solve is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one search invocation.
type Options struct {
	// Ctx allows caller-imposed cancellation; checked once per pop.
	Ctx context.Context

	// DepthLimit bounds node depth for DLS. Negative means unset.
	DepthLimit int

	// MaxDepthLimit caps the IDS outer loop (inclusive).
	MaxDepthLimit int

	// ParityCheck, when true, runs the permutation-parity test before
	// searching and reports StatusExhausted immediately on an unreachable
	// goal, with zero statistics.
	ParityCheck bool

	// NodeBudget, when > 0, aborts the run with StatusExhausted once that
	// many nodes have been popped.
	NodeBudget int

	// Tracer, when non-nil, receives an event per initialization and per
	// expansion. Snapshots are materialized only when a Tracer is set.
	Tracer Tracer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// the default IDS cap, no parity pre-check, no node budget, and no tracer.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		DepthLimit:    -1,
		MaxDepthLimit: DefaultMaxDepthLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthLimit sets the DLS depth cutoff: nodes at depth ≥ d are popped
// and goal-tested but never expanded. d must be ≥ 0.
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithMaxDepthLimit caps the IDS outer loop at limit n (inclusive).
// n must be > 0.
func WithMaxDepthLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: IDS depth cap must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepthLimit = n
	}
}

// WithParityCheck enables the fast unreachable-goal pre-check.
func WithParityCheck() Option {
	return func(o *Options) {
		o.ParityCheck = true
	}
}

// WithNodeBudget aborts the search after n pops. n must be ≥ 0;
// 0 disables the budget.
func WithNodeBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: node budget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeBudget = n
	}
}

// WithTracer streams per-step events to t (see Tracer).
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}
