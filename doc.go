// Package expense8 solves the "expense" variant of the 3×3 sliding puzzle,
// where moving a tile costs its face value, and compares seven classical
// search strategies on the same instance.
//
// 🚀 What is expense8?
//
//	A small, focused library plus CLI that brings together:
//		• State model: immutable 3×3 boards, legal-move generation, parity checks
//		• Heuristic: weighted Manhattan distance (tile number × displacement)
//		• One search engine: A*, Greedy, UCS, BFS, DFS, DLS and IDS as
//		  frontier-ordering policies over a single expansion loop
//		• Statistics: nodes popped / expanded / generated, max fringe size
//		• Trace stream: per-expansion snapshots for dump-file writers
//
// ✨ Why expense8?
//
//   - Comparative by construction – every strategy shares the same loop,
//     counters and tie-break rule, so reported statistics are comparable
//   - Deterministic – fixed successor order and FIFO tie-breaks make every
//     run reproducible down to the last counter
//   - Pure Go library core – no cgo, silent, error-returning APIs
//
// The module is organized under three subpackages and one command:
//
//	puzzle/       — State, Move, successor generation, parity, grid text I/O
//	heuristic/    — weighted Manhattan distance estimator
//	search/       — Strategy, Options, the engine, Stats, Result, Tracer
//	cmd/expense8/ — CLI: `expense8 <start> <goal> <method> [limit] [--dump]`
//
// Quick ASCII example:
//
//	1 2 3        1 2 3
//	4 _ 5   ──▶  4 5 6     (Move 5 Left, Move 6 Up: depth 2, cost 11)
//	7 8 6        7 8 _
//
// Dive into the per-package doc.go files for contracts, conventions and
// complexity notes.
package expense8
