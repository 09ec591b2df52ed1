package engine

import "fmt"

// Ship is a run of contiguous cells on one player's board. It validates its
// own geometry but knows nothing about other ships or about its owner.
type Ship struct {
	length      int
	orientation Orientation
	intact      []Coordinate
}

// NewShip creates a ship of the given length starting at start and extending
// in orientation. It fails with ErrInvalidPlacement when the ship is shorter
// than MinShipLength or does not fit on the board.
func NewShip(length int, start string, orientation Orientation) (*Ship, error) {
	origin, err := ParseCoordinate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlacement, err)
	}
	return newShipAt(length, origin, orientation)
}

func newShipAt(length int, origin Coordinate, orientation Orientation) (*Ship, error) {
	coords, err := ShipCoordinates(origin, length, orientation)
	if err != nil {
		return nil, err
	}
	return &Ship{
		length:      length,
		orientation: orientation,
		intact:      coords,
	}, nil
}

// RegisterHit removes c from the ship's intact cells. A coordinate the ship
// does not occupy is ignored and false is returned.
func (s *Ship) RegisterHit(c Coordinate) bool {
	for i, cell := range s.intact {
		if cell == c {
			s.intact = append(s.intact[:i], s.intact[i+1:]...)
			return true
		}
	}
	return false
}

// Occupies reports whether c is one of the ship's intact cells
func (s *Ship) Occupies(c Coordinate) bool {
	for _, cell := range s.intact {
		if cell == c {
			return true
		}
	}
	return false
}

// Coordinates returns the intact cells in placement order. An empty result
// means the ship is sunk.
func (s *Ship) Coordinates() []Coordinate {
	out := make([]Coordinate, len(s.intact))
	copy(out, s.intact)
	return out
}

// Len returns the length the ship was created with
func (s *Ship) Len() int {
	return s.length
}

// Orientation returns the orientation fixed at creation
func (s *Ship) Orientation() Orientation {
	return s.orientation
}

// IsSunk reports whether every cell has been hit
func (s *Ship) IsSunk() bool {
	return len(s.intact) == 0
}

// View returns a snapshot suitable for JSON output
func (s *Ship) View() ShipView {
	intact := make([]string, len(s.intact))
	for i, c := range s.intact {
		intact[i] = c.String()
	}
	return ShipView{
		Length:      s.length,
		Orientation: s.orientation.String(),
		Intact:      intact,
	}
}
