package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// terminator is the literal line that closes a grid in the text format.
const terminator = "END"

// ParseState reads a board from r in the grid text format:
//
//	1 2 3
//	4 0 5
//	7 8 6
//	END
//
// Exactly three rows of three whitespace-separated integers, then a line
// reading END. Content after the terminator is ignored. Returns
// ErrBadShape, ErrBadToken, ErrMissingTerminator, ErrTileRange, or
// ErrDuplicateTile on malformed input.
func ParseState(r io.Reader) (State, error) {
	var s State

	sc := bufio.NewScanner(r)
	row := 0
	terminated := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == terminator {
			terminated = true
			break
		}
		if row >= Side {
			return s, fmt.Errorf("%w: more than %d rows", ErrBadShape, Side)
		}

		fields := strings.Fields(line)
		if len(fields) != Side {
			return s, fmt.Errorf("%w: row %d has %d values", ErrBadShape, row+1, len(fields))
		}
		for col, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return s, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			s[row*Side+col] = v
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return s, fmt.Errorf("puzzle: reading grid: %w", err)
	}
	if !terminated {
		return s, ErrMissingTerminator
	}
	if row != Side {
		return s, fmt.Errorf("%w: got %d rows", ErrBadShape, row)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}
