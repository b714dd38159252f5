// Package puzzle defines the board value types, move vocabulary, and
// sentinel errors shared by the move generator and the grid parser.
package puzzle

import (
	"errors"
	"fmt"
)

// Board geometry. The engine supports exactly the 3×3 board; the constants
// exist so that 3 and 9 never appear as bare magic numbers.
const (
	// Side is the board's edge length.
	Side = 3
	// CellCount is the number of cells (and distinct tile values, blank included).
	CellCount = Side * Side
	// Blank is the tile value representing the empty cell.
	Blank = 0
)

// Sentinel errors for state validation, parsing, and move replay.
var (
	// ErrBadShape indicates the grid text does not form three rows of three values.
	ErrBadShape = errors.New("puzzle: grid must be three rows of three values")
	// ErrBadToken indicates a grid token that is not an integer.
	ErrBadToken = errors.New("puzzle: grid token is not an integer")
	// ErrMissingTerminator indicates the grid text ended before the END line.
	ErrMissingTerminator = errors.New(`puzzle: missing "END" terminator line`)
	// ErrTileRange indicates a tile value outside 0..8.
	ErrTileRange = errors.New("puzzle: tile value out of range 0..8")
	// ErrDuplicateTile indicates a tile value appearing more than once.
	ErrDuplicateTile = errors.New("puzzle: duplicate tile value")
	// ErrIllegalMove indicates a Move that the given State does not admit.
	ErrIllegalMove = errors.New("puzzle: move does not apply to this state")
)

// State is a row-major flattening of the 3×3 grid: index = row*Side + col.
// It is a comparable value type; two States are equal iff their cells are,
// and a State may be used directly as a map key.
type State [CellCount]int

// Direction is the direction a tile moves when it slides into the blank.
type Direction uint8

const (
	// Up moves a tile one row up.
	Up Direction = iota
	// Down moves a tile one row down.
	Down
	// Left moves a tile one column left.
	Left
	// Right moves a tile one column right.
	Right
)

// directionNames is indexed by Direction.
var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// String returns the capitalized direction name used in move labels.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Move names a single tile slide: which tile moved and in which direction,
// always from the tile's perspective.
type Move struct {
	Tile int       // face value of the tile that slid into the blank
	Dir  Direction // direction the tile moved
}

// String renders the human-readable label, e.g. "Move 5 Up".
func (m Move) String() string {
	return fmt.Sprintf("Move %d %s", m.Tile, m.Dir)
}

// Successor is one legal transition out of a State.
type Successor struct {
	State State // board after the move
	Move  Move  // label for the move that produced State
	Cost  int   // move expense: the face value of the tile that moved
}
