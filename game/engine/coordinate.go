package engine

import (
	"fmt"
	"strconv"
)

// Coordinate is a parsed board position. Row 0 is 'A' and Col 0 is column 1.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ParseCoordinate parses strings such as "A1" or "J10". The row letter must be
// uppercase and the column must not have a leading zero.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	row := rune(s[0])
	if row < FirstRow || row > LastRow {
		return Coordinate{}, fmt.Errorf("%w: row %q outside %c-%c", ErrInvalidCoordinate, s[0], FirstRow, LastRow)
	}

	digits := s[1:]
	if digits[0] == '0' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
		}
	}
	col, err := strconv.Atoi(digits)
	if err != nil || col < 1 || col > BoardSize {
		return Coordinate{}, fmt.Errorf("%w: column %q outside 1-%d", ErrInvalidCoordinate, digits, BoardSize)
	}

	return Coordinate{Row: int(row - FirstRow), Col: col - 1}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on malformed input
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// InBounds reports whether c lies on the board
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// String returns the canonical form, e.g. "A10"
func (c Coordinate) String() string {
	return fmt.Sprintf("%c%d", FirstRow+rune(c.Row), c.Col+1)
}

// Step advances c by n cells in the given orientation. The second result is
// false when the destination is off the board.
func (c Coordinate) Step(o Orientation, n int) (Coordinate, bool) {
	next := c
	switch o {
	case Vertical:
		next.Row += n
	case Horizontal:
		next.Col += n
	default:
		return c, false
	}
	return next, next.InBounds()
}

// ShipCoordinates computes every cell a ship of the given length occupies
// when extended from start. It only checks the ship against the board edges.
func ShipCoordinates(start Coordinate, length int, o Orientation) ([]Coordinate, error) {
	if length < MinShipLength {
		return nil, fmt.Errorf("%w: %w: length %d, minimum is %d", ErrInvalidPlacement, ErrShipTooShort, length, MinShipLength)
	}
	if !start.InBounds() {
		return nil, fmt.Errorf("%w: %w: start %v", ErrInvalidPlacement, ErrOutOfBounds, start)
	}
	if _, ok := start.Step(o, length-1); !ok {
		return nil, fmt.Errorf("%w: %w: %d cells %s from %s", ErrInvalidPlacement, ErrOutOfBounds, length, o, start)
	}

	coords := make([]Coordinate, length)
	for i := range coords {
		coords[i], _ = start.Step(o, i)
	}
	return coords, nil
}
