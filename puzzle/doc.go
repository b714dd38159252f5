// Package puzzle models the 3×3 sliding puzzle board: states, legal moves,
// solvability, and the grid text format used by the CLI.
//
// What
//
//   - State: a value type ([9]int, row-major) with 0 as the blank tile.
//     States compare with == and serve directly as map keys.
//   - Successors: the ordered legal moves of a state, each carrying the
//     resulting State, a Move label, and the move's cost (the face value of
//     the tile that slid into the blank).
//   - Apply: replays a Move against a State, for path verification.
//   - Solvable: the permutation-parity reachability test.
//   - ParseState: reads the "three rows of three integers, then END" format.
//
// Determinism
//
//	Successors always enumerates candidate blank moves in the fixed order
//	up, down, left, right (of the blank). Frontier tie-breaking and every
//	reported statistic downstream depend on this order, so it is part of
//	the package contract.
//
// Move labels
//
//	Labels name the tile and the direction the TILE moved, not the blank:
//	when the blank moves down it trades places with the tile below it, and
//	that tile moves Up, so the label reads "Move 5 Up".
//
// Complexity
//
//   - Successors, Apply, Estimate-style scans: O(9) — constant for a fixed board.
//   - Solvable: O(81) inversion count — constant.
//
// Errors
//
//   - ErrBadShape, ErrBadToken, ErrMissingTerminator for malformed grid text.
//   - ErrTileRange, ErrDuplicateTile for invalid tile sets.
//   - ErrIllegalMove when Apply is given a move the state does not admit.
package puzzle
