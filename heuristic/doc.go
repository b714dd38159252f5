// Package heuristic estimates the remaining cost from a board to a goal
// under the expense cost model, where moving a tile costs its face value.
//
// What
//
//	WeightedManhattan computes
//
//	    h(s) = Σ over tiles t≠0 of  t × ManhattanDistance(pos(t, s), pos(t, goal))
//
//	against a goal-position table built once per goal.
//
// Why this is admissible and consistent
//
//	Every move slides exactly one tile t one cell, costs t, and changes only
//	t's Manhattan displacement — by exactly one. A tile t that is d cells
//	away therefore needs at least d moves of cost t, so h never overestimates
//	(admissible), and |h(s) − h(s′)| = t ≤ cost(s→s′) across any legal move
//	(consistent). The property tests in the search package verify both
//	empirically against exhaustive optimal costs.
//
// Complexity
//
//   - New: O(9) table build.
//   - Estimate: O(9) per call, zero allocations.
//
// Errors
//
//   - ErrBadGoal if the goal board fails validation.
package heuristic
