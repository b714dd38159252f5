package puzzle

// Solvable reports whether goal is reachable from start under legal moves.
//
// On an odd-width board the inversion parity of the non-blank tiles,
// measured against the goal's tile ordering, is invariant under every legal
// move: sliding a tile along a row changes nothing, sliding it between rows
// shifts it past exactly two other tiles. Start and goal are mutually
// reachable iff their parities agree.
//
// Both arguments must be valid States (see State.Validate); the result is
// unspecified otherwise.
func Solvable(start, goal State) bool {
	// Rank each tile by its goal position, then count inversions among the
	// non-blank tiles of start in that ranking.
	var rank [CellCount]int
	for i, v := range goal {
		rank[v] = i
	}

	perm := make([]int, 0, CellCount-1)
	for _, v := range start {
		if v == Blank {
			continue
		}
		perm = append(perm, rank[v])
	}

	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}

	return inversions%2 == 0
}
