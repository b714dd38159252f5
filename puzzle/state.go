package puzzle

import (
	"fmt"
	"strings"
)

// blankMove pairs a blank displacement with the direction the displaced
// tile travels (the opposite of the blank's own direction).
type blankMove struct {
	rowDelta int
	colDelta int
	tileDir  Direction
}

// blankMoves is the fixed successor enumeration order: blank up, down,
// left, right. Changing this order changes tie-breaking and therefore
// every downstream statistic.
var blankMoves = [...]blankMove{
	{rowDelta: -1, colDelta: 0, tileDir: Down},  // blank up: tile above moves down
	{rowDelta: +1, colDelta: 0, tileDir: Up},    // blank down: tile below moves up
	{rowDelta: 0, colDelta: -1, tileDir: Right}, // blank left: tile to the left moves right
	{rowDelta: 0, colDelta: +1, tileDir: Left},  // blank right: tile to the right moves left
}

// Validate reports whether s is a legal board: every value in 0..8, each
// exactly once. Returns ErrTileRange or ErrDuplicateTile with the offending
// value, or nil.
func (s State) Validate() error {
	var seen [CellCount]bool
	for _, v := range s {
		if v < 0 || v >= CellCount {
			return fmt.Errorf("%w: %d", ErrTileRange, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d", ErrDuplicateTile, v)
		}
		seen[v] = true
	}

	return nil
}

// BlankIndex returns the flat index of the blank cell.
// s must be a valid State; on a corrupt board it returns -1.
func (s State) BlankIndex() int {
	for i, v := range s {
		if v == Blank {
			return i
		}
	}

	return -1
}

// Grid returns the 3×3 view of the state, row-major.
func (s State) Grid() [Side][Side]int {
	var g [Side][Side]int
	for i, v := range s {
		g[i/Side][i%Side] = v
	}

	return g
}

// String renders the board as three space-separated rows, e.g.
//
//	1 2 3
//	4 0 5
//	7 8 6
func (s State) String() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			if i%Side == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d", v)
	}

	return b.String()
}

// Successors enumerates the legal transitions out of s, in the fixed order
// documented on blankMoves. A corner blank yields 2 successors, an edge
// blank 3, the center blank 4. s is never mutated.
func (s State) Successors() []Successor {
	zero := s.BlankIndex()
	row, col := zero/Side, zero%Side

	out := make([]Successor, 0, len(blankMoves))
	for _, bm := range blankMoves {
		r, c := row+bm.rowDelta, col+bm.colDelta
		if r < 0 || r >= Side || c < 0 || c >= Side {
			continue
		}
		from := r*Side + c
		next := s
		next[zero], next[from] = next[from], next[zero]
		tile := s[from]
		out = append(out, Successor{
			State: next,
			Move:  Move{Tile: tile, Dir: bm.tileDir},
			Cost:  tile,
		})
	}

	return out
}

// Apply replays m against s and returns the resulting state. The move is
// legal only when tile m.Tile sits adjacent to the blank and sliding it in
// direction m.Dir lands it on the blank cell. Returns ErrIllegalMove
// otherwise. Used to verify solution paths independently of the engine.
func (s State) Apply(m Move) (State, error) {
	if m.Tile <= Blank || m.Tile >= CellCount {
		return s, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	zero := s.BlankIndex()
	tileIdx := -1
	for i, v := range s {
		if v == m.Tile {
			tileIdx = i
			break
		}
	}
	if tileIdx < 0 {
		return s, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	// Destination cell of the tile, from the tile's perspective.
	row, col := tileIdx/Side, tileIdx%Side
	switch m.Dir {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	default:
		return s, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if row < 0 || row >= Side || col < 0 || col >= Side || row*Side+col != zero {
		return s, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	next := s
	next[zero], next[tileIdx] = next[tileIdx], next[zero]

	return next, nil
}
