// Package search_test validates the engine: terminal statuses, solution
// correctness, per-strategy statistics, determinism, and failure handling.
package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense8/puzzle"
	"expense8/search"
)

var (
	// two-move instance: Move 5 Left, Move 6 Up; cost 5+6 = 11
	startCenter = puzzle.State{1, 2, 3, 4, 0, 5, 7, 8, 6}
	goalStd     = puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 0}

	// instance on which greedy best-first commits to an expensive path
	startGreedyTrap = puzzle.State{1, 2, 3, 7, 0, 4, 8, 6, 5}

	// goal with two tiles transposed: opposite parity class, unreachable
	startUnsolvable = puzzle.State{2, 1, 3, 4, 5, 6, 7, 8, 0}
)

// ------------------------------------------------------------------------
// 1. Validation: invalid invocations are errors, before any search begins.
// ------------------------------------------------------------------------

func TestSolve_InvalidStart(t *testing.T) {
	bad := puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 8}
	_, err := search.Solve(bad, goalStd, search.AStar)
	assert.ErrorIs(t, err, search.ErrInvalidStart)
}

func TestSolve_InvalidGoal(t *testing.T) {
	bad := puzzle.State{1, 2, 3, 4, 5, 6, 7, 8, 9}
	_, err := search.Solve(startCenter, bad, search.AStar)
	assert.ErrorIs(t, err, search.ErrInvalidGoal)
}

func TestSolve_UnknownStrategy(t *testing.T) {
	_, err := search.Solve(startCenter, goalStd, search.Strategy(99))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestSolve_DLSRequiresLimit(t *testing.T) {
	_, err := search.Solve(startCenter, goalStd, search.DLS)
	assert.ErrorIs(t, err, search.ErrDepthLimitRequired)
}

func TestSolve_OptionViolations(t *testing.T) {
	_, err := search.Solve(startCenter, goalStd, search.DLS, search.WithDepthLimit(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Solve(startCenter, goalStd, search.IDS, search.WithMaxDepthLimit(0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Solve(startCenter, goalStd, search.BFS, search.WithNodeBudget(-5))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. The two-move instance: every strategy solves it; statistics are pinned
//    exactly, as the determinism contract promises.
// ------------------------------------------------------------------------

func TestSolve_TwoMoveInstance_AllStrategies(t *testing.T) {
	wantMoves := []puzzle.Move{
		{Tile: 5, Dir: puzzle.Left},
		{Tile: 6, Dir: puzzle.Up},
	}

	cases := []struct {
		strategy search.Strategy
		opts     []search.Option
		want     search.Stats
		optimal  bool // expect the cost-11 depth-2 solution
	}{
		{search.AStar, nil, search.Stats{NodesPopped: 3, NodesExpanded: 2, NodesGenerated: 7, MaxFringeSize: 5}, true},
		{search.Greedy, nil, search.Stats{NodesPopped: 3, NodesExpanded: 2, NodesGenerated: 7, MaxFringeSize: 5}, true},
		{search.UCS, nil, search.Stats{NodesPopped: 18, NodesExpanded: 17, NodesGenerated: 47, MaxFringeSize: 15}, true},
		{search.BFS, nil, search.Stats{NodesPopped: 13, NodesExpanded: 12, NodesGenerated: 30, MaxFringeSize: 8}, true},
		{search.DLS, []search.Option{search.WithDepthLimit(2)}, search.Stats{NodesPopped: 13, NodesExpanded: 5, NodesGenerated: 16, MaxFringeSize: 5}, true},
		{search.IDS, nil, search.Stats{NodesPopped: 19, NodesExpanded: 6, NodesGenerated: 20, MaxFringeSize: 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			res, err := search.Solve(startCenter, goalStd, tc.strategy, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, search.StatusSolved, res.Status)
			assert.Equal(t, tc.want, res.Stats)
			if tc.optimal {
				assert.Equal(t, wantMoves, res.Moves)
				assert.Equal(t, 11, res.Cost)
				assert.Equal(t, 2, res.Depth)
			}
		})
	}
}

// TestSolve_TwoMoveInstance_DFS: DFS still solves the instance, just along a
// very long path. Exact statistics pin the determinism of the LIFO order.
func TestSolve_TwoMoveInstance_DFS(t *testing.T) {
	res, err := search.Solve(startCenter, goalStd, search.DFS)
	require.NoError(t, err)
	require.Equal(t, search.StatusSolved, res.Status)
	assert.Equal(t, 11961, res.Cost)
	assert.Equal(t, 2602, res.Depth)
	assert.Equal(t, search.Stats{
		NodesPopped:    2656,
		NodesExpanded:  2655,
		NodesGenerated: 7455,
		MaxFringeSize:  1944,
	}, res.Stats)
	verifyPath(t, startCenter, goalStd, res)
}

// TestSolve_RoundTrip: replaying the returned labels against the start state
// must reproduce the goal, and the accumulated move costs must equal Cost.
func TestSolve_RoundTrip(t *testing.T) {
	for _, strategy := range []search.Strategy{search.AStar, search.Greedy, search.UCS, search.BFS, search.IDS} {
		res, err := search.Solve(startCenter, goalStd, strategy)
		require.NoError(t, err, strategy)
		require.True(t, res.Solved(), strategy)
		verifyPath(t, startCenter, goalStd, res)
	}
}

// ------------------------------------------------------------------------
// 3. Optimality and suboptimality.
// ------------------------------------------------------------------------

// TestSolve_AStarMatchesUCS: with an admissible, consistent heuristic the
// A* cost must equal the UCS cost on any solvable instance.
func TestSolve_AStarMatchesUCS(t *testing.T) {
	for _, start := range []puzzle.State{
		startCenter,
		startGreedyTrap,
		{0, 1, 3, 4, 2, 5, 7, 8, 6},
		{1, 2, 3, 0, 4, 6, 7, 5, 8},
	} {
		astar, err := search.Solve(start, goalStd, search.AStar)
		require.NoError(t, err)
		ucs, err := search.Solve(start, goalStd, search.UCS)
		require.NoError(t, err)
		require.True(t, astar.Solved() && ucs.Solved())
		assert.Equal(t, ucs.Cost, astar.Cost, "start:\n%s", start)
		verifyPath(t, start, goalStd, astar)
		verifyPath(t, start, goalStd, ucs)
	}
}

// TestSolve_GreedySuboptimal documents an instance where greedy best-first
// returns a strictly more expensive path than A*: the weighted heuristic
// lures it through heavy-tile moves A* avoids.
func TestSolve_GreedySuboptimal(t *testing.T) {
	astar, err := search.Solve(startGreedyTrap, goalStd, search.AStar)
	require.NoError(t, err)
	greedy, err := search.Solve(startGreedyTrap, goalStd, search.Greedy)
	require.NoError(t, err)

	require.True(t, astar.Solved() && greedy.Solved())
	assert.Equal(t, 45, astar.Cost)
	assert.Equal(t, 8, astar.Depth)
	assert.Equal(t, 123, greedy.Cost)
	assert.Equal(t, 28, greedy.Depth)
	assert.Greater(t, greedy.Cost, astar.Cost)
	verifyPath(t, startGreedyTrap, goalStd, greedy)
}

// ------------------------------------------------------------------------
// 4. Depth limits and iterative deepening.
// ------------------------------------------------------------------------

// TestSolve_DLSBelowTrueDepth: a limit under the true solution depth must
// report a cutoff, never a false solution.
func TestSolve_DLSBelowTrueDepth(t *testing.T) {
	res, err := search.Solve(startCenter, goalStd, search.DLS, search.WithDepthLimit(1))
	require.NoError(t, err)
	assert.Equal(t, search.StatusCutoff, res.Status)
	assert.Empty(t, res.Moves)
	assert.Equal(t, search.Stats{
		NodesPopped:    5,
		NodesExpanded:  1,
		NodesGenerated: 4,
		MaxFringeSize:  4,
	}, res.Stats)
}

// TestSolve_DLSLimitZero: limit 0 pops only the root.
func TestSolve_DLSLimitZero(t *testing.T) {
	res, err := search.Solve(startCenter, goalStd, search.DLS, search.WithDepthLimit(0))
	require.NoError(t, err)
	assert.Equal(t, search.StatusCutoff, res.Status)
	assert.Equal(t, 1, res.Stats.NodesPopped)
	assert.Equal(t, 0, res.Stats.NodesExpanded)
}

// TestSolve_IDSFindsShallowest: IDS must match BFS's solution depth.
func TestSolve_IDSFindsShallowest(t *testing.T) {
	ids, err := search.Solve(startGreedyTrap, goalStd, search.IDS)
	require.NoError(t, err)
	bfs, err := search.Solve(startGreedyTrap, goalStd, search.BFS)
	require.NoError(t, err)
	require.True(t, ids.Solved() && bfs.Solved())
	assert.Equal(t, bfs.Depth, ids.Depth)
	verifyPath(t, startGreedyTrap, goalStd, ids)
}

// TestSolve_IDSCappedReportsCutoff: a cap below the solution depth makes IDS
// give up with a cutoff after exhausting its limits.
func TestSolve_IDSCappedReportsCutoff(t *testing.T) {
	res, err := search.Solve(startGreedyTrap, goalStd, search.IDS, search.WithMaxDepthLimit(3))
	require.NoError(t, err)
	assert.Equal(t, search.StatusCutoff, res.Status)
	assert.Empty(t, res.Moves)
}

// ------------------------------------------------------------------------
// 5. Unreachable goals and caller-imposed budgets.
// ------------------------------------------------------------------------

func TestSolve_ParityCheckFailsFast(t *testing.T) {
	res, err := search.Solve(startUnsolvable, goalStd, search.AStar, search.WithParityCheck())
	require.NoError(t, err)
	assert.Equal(t, search.StatusExhausted, res.Status)
	assert.Equal(t, search.Stats{}, res.Stats)
}

// TestSolve_UnsolvableExhaustsComponent: without the parity pre-check, UCS
// must sweep the entire reachable half of the state space (9!/2 = 181440
// states) and terminate in exhaustion.
func TestSolve_UnsolvableExhaustsComponent(t *testing.T) {
	if testing.Short() {
		t.Skip("exhausts 181440 states; skipped in -short mode")
	}
	res, err := search.Solve(startUnsolvable, goalStd, search.UCS)
	require.NoError(t, err)
	assert.Equal(t, search.StatusExhausted, res.Status)
	assert.Equal(t, 181440, res.Stats.NodesExpanded)
	assertStatsConsistent(t, res.Stats)
}

func TestSolve_NodeBudgetAborts(t *testing.T) {
	res, err := search.Solve(startGreedyTrap, goalStd, search.BFS, search.WithNodeBudget(1))
	require.NoError(t, err)
	assert.Equal(t, search.StatusExhausted, res.Status)
	assert.Equal(t, 1, res.Stats.NodesPopped)
}

func TestSolve_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Solve(startGreedyTrap, goalStd, search.BFS, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 6. Edge cases, invariants, determinism.
// ------------------------------------------------------------------------

// TestSolve_StartIsGoal: the root is popped, goal-tested, and never expanded.
func TestSolve_StartIsGoal(t *testing.T) {
	for _, strategy := range []search.Strategy{search.AStar, search.UCS, search.BFS, search.DFS, search.IDS} {
		res, err := search.Solve(goalStd, goalStd, strategy)
		require.NoError(t, err, strategy)
		assert.Equal(t, search.StatusSolved, res.Status, strategy)
		assert.Empty(t, res.Moves, strategy)
		assert.Equal(t, 0, res.Cost, strategy)
		assert.Equal(t, 0, res.Depth, strategy)
		assert.Equal(t, search.Stats{NodesPopped: 1, MaxFringeSize: 1}, res.Stats, strategy)
	}
}

// TestSolve_StatsInvariants: expanded ≤ popped ≤ generated + 1, and a solved
// run always observed a fringe of at least one node.
func TestSolve_StatsInvariants(t *testing.T) {
	for _, strategy := range []search.Strategy{search.AStar, search.Greedy, search.UCS, search.BFS, search.DFS, search.IDS} {
		res, err := search.Solve(startGreedyTrap, goalStd, strategy)
		require.NoError(t, err, strategy)
		require.True(t, res.Solved(), strategy)
		assertStatsConsistent(t, res.Stats)
		assert.GreaterOrEqual(t, res.Stats.MaxFringeSize, 1, strategy)
	}
}

// TestSolve_Deterministic: identical invocations yield identical results,
// statistics included.
func TestSolve_Deterministic(t *testing.T) {
	for _, strategy := range []search.Strategy{search.AStar, search.Greedy, search.UCS, search.BFS, search.DFS} {
		first, err := search.Solve(startGreedyTrap, goalStd, strategy)
		require.NoError(t, err, strategy)
		second, err := search.Solve(startGreedyTrap, goalStd, strategy)
		require.NoError(t, err, strategy)
		assert.Equal(t, first, second, strategy)
	}
}

// verifyPath replays res.Moves from start and checks the goal is reached
// with exactly the reported cost and depth.
func verifyPath(t *testing.T, start, goal puzzle.State, res *search.Result) {
	t.Helper()
	s := start
	cost := 0
	for _, m := range res.Moves {
		next, err := s.Apply(m)
		require.NoError(t, err, "replaying %s against\n%s", m, s)
		cost += m.Tile
		s = next
	}
	assert.Equal(t, goal, s, "replayed path must end at the goal")
	assert.Equal(t, res.Cost, cost, "reported cost must equal accumulated move expense")
	assert.Equal(t, res.Depth, len(res.Moves))
}

func assertStatsConsistent(t *testing.T, s search.Stats) {
	t.Helper()
	assert.LessOrEqual(t, s.NodesExpanded, s.NodesPopped)
	assert.LessOrEqual(t, s.NodesPopped, s.NodesGenerated+1)
}
