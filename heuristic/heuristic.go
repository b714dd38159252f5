package heuristic

import (
	"errors"
	"fmt"

	"expense8/puzzle"
)

// ErrBadGoal indicates the goal passed to New is not a valid board.
var ErrBadGoal = errors.New("heuristic: invalid goal state")

// WeightedManhattan estimates remaining cost as the sum, over all tiles, of
// tile number × Manhattan distance to the tile's goal cell. Build one per
// goal with New; Estimate is then read-only and safe to call repeatedly.
type WeightedManhattan struct {
	// goalPos maps tile value → flat goal index; entry for Blank is unused.
	goalPos [puzzle.CellCount]int
}

// New builds the goal-position lookup table for goal.
// Returns ErrBadGoal (wrapping the validation detail) on an invalid board.
func New(goal puzzle.State) (*WeightedManhattan, error) {
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGoal, err)
	}

	wm := &WeightedManhattan{}
	for i, v := range goal {
		wm.goalPos[v] = i
	}

	return wm, nil
}

// Estimate returns h(s) for a valid board s. The estimate is zero iff every
// tile already sits on its goal cell.
func (wm *WeightedManhattan) Estimate(s puzzle.State) int {
	total := 0
	for i, v := range s {
		if v == puzzle.Blank {
			continue
		}
		g := wm.goalPos[v]
		rowDist := i/puzzle.Side - g/puzzle.Side
		if rowDist < 0 {
			rowDist = -rowDist
		}
		colDist := i%puzzle.Side - g%puzzle.Side
		if colDist < 0 {
			colDist = -colDist
		}
		total += v * (rowDist + colDist)
	}

	return total
}
