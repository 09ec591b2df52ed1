package engine

import "errors"

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidPlayer      = errors.New("invalid player")

	ErrInvalidPlacement = errors.New("invalid placement")
	ErrShipTooShort     = errors.New("ship too short")
	ErrOutOfBounds      = errors.New("ship out of bounds")
	ErrOverlap          = errors.New("ship overlaps an existing ship")

	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game is over")
)
