package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Setup
	PlaceShip(player Player, length int, start string, orientation Orientation) bool
	Place(player Player, length int, start string, orientation Orientation) (*Ship, error)
	ApplySetup(setup *FleetSetup) error

	// Firing
	FireTorpedo(player Player, target string) bool
	Fire(player Player, target string) (ShotResult, error)

	// Game state
	CurrentState() GameState
	Turn() Player
	IsGameOver() bool
	Winner() (Player, bool)
	RemainingShipCount(player Player) int
	Fleet(player Player) []ShipView

	// History
	History() []ShotRecord
	LastShot() *ShotRecord
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; callers sharing an engine must serialize access themselves.
type GameEngine struct {
	fleets  map[Player][]*Ship
	turn    Player
	state   GameState
	history []ShotRecord
}

// NewEngine creates an empty game with the first player to move
func NewEngine() *GameEngine {
	return &GameEngine{
		fleets: map[Player][]*Ship{
			First:  {},
			Second: {},
		},
		turn:    First,
		state:   Unfinished,
		history: []ShotRecord{},
	}
}

// NewEngineWithSetup creates a game and places every ship in setup
func NewEngineWithSetup(setup *FleetSetup) (*GameEngine, error) {
	e := NewEngine()
	if setup == nil {
		return e, nil
	}
	if err := e.ApplySetup(setup); err != nil {
		return nil, err
	}
	return e, nil
}

// PlaceShip adds a ship to player's fleet and reports whether it was accepted
func (e *GameEngine) PlaceShip(player Player, length int, start string, orientation Orientation) bool {
	_, err := e.Place(player, length, start, orientation)
	return err == nil
}

// Place adds a ship to player's fleet. Placement is allowed at any time and
// is independent of whose turn it is. The ship must fit on the board and must
// not share a cell with any ship the same player already placed; ships of the
// other player are ignored since each player has their own board.
func (e *GameEngine) Place(player Player, length int, start string, orientation Orientation) (*Ship, error) {
	if !player.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}

	candidate, err := NewShip(length, start, orientation)
	if err != nil {
		return nil, err
	}

	for _, c := range candidate.intact {
		for _, existing := range e.fleets[player] {
			if existing.Occupies(c) {
				return nil, fmt.Errorf("%w: %s already occupied by %s", ErrOverlap, c, player)
			}
		}
	}

	e.fleets[player] = append(e.fleets[player], candidate)
	return candidate, nil
}

// FireTorpedo fires at target and reports whether the shot was accepted
func (e *GameEngine) FireTorpedo(player Player, target string) bool {
	_, err := e.Fire(player, target)
	return err == nil
}

// Fire resolves a torpedo from player at target. The shot is rejected when
// the game is already decided or it is not player's turn. An accepted shot
// always passes the turn to the opponent, whether it hit or not. A target that
// cannot be parsed, was already hit, or holds no ship is a miss.
//
// The game is won only when this shot sinks the opponent's last ship, so an
// opponent who never placed any ships cannot lose.
func (e *GameEngine) Fire(player Player, target string) (ShotResult, error) {
	if e.state != Unfinished {
		return ShotResult{}, fmt.Errorf("%w: %s", ErrGameOver, e.state)
	}
	if !player.Valid() {
		return ShotResult{}, fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}
	if player != e.turn {
		return ShotResult{}, fmt.Errorf("%w: %s to fire", ErrNotYourTurn, e.turn)
	}

	opponent := player.Opponent()
	result := ShotResult{Player: player, Target: target}

	if c, err := ParseCoordinate(target); err == nil {
		result.Target = c.String()

		fleet := e.fleets[opponent]
		afloat := make([]*Ship, 0, len(fleet))
		for _, ship := range fleet {
			if ship.RegisterHit(c) {
				result.Hit = true
				view := ship.View()
				result.Ship = &view
			}
			if ship.IsSunk() {
				result.Sunk = true
				continue
			}
			afloat = append(afloat, ship)
		}
		e.fleets[opponent] = afloat

		if result.Sunk && len(afloat) == 0 {
			e.state = winStateFor(player)
		}
	}

	e.turn = opponent
	result.State = e.state
	result.Turn = e.turn

	e.history = append(e.history, ShotRecord{
		Number:    len(e.history) + 1,
		Player:    player,
		Target:    result.Target,
		Hit:       result.Hit,
		Sunk:      result.Sunk,
		Won:       e.state != Unfinished,
		Timestamp: time.Now(),
	})

	return result, nil
}

// CurrentState returns the game outcome so far
func (e *GameEngine) CurrentState() GameState {
	return e.state
}

// Turn returns the player allowed to fire next
func (e *GameEngine) Turn() Player {
	return e.turn
}

// IsGameOver returns whether either player has won
func (e *GameEngine) IsGameOver() bool {
	return e.state != Unfinished
}

// Winner returns the winning player once the game is decided
func (e *GameEngine) Winner() (Player, bool) {
	switch e.state {
	case FirstWon:
		return First, true
	case SecondWon:
		return Second, true
	default:
		return "", false
	}
}

// RemainingShipCount returns how many of player's ships are still afloat.
// Unknown players have no ships.
func (e *GameEngine) RemainingShipCount(player Player) int {
	return len(e.fleets[player])
}

// Fleet returns a snapshot of player's ships that are still afloat
func (e *GameEngine) Fleet(player Player) []ShipView {
	ships := e.fleets[player]
	views := make([]ShipView, len(ships))
	for i, s := range ships {
		views[i] = s.View()
	}
	return views
}

// History returns every accepted shot in order
func (e *GameEngine) History() []ShotRecord {
	out := make([]ShotRecord, len(e.history))
	copy(out, e.history)
	return out
}

// LastShot returns the most recent accepted shot, or nil if none
func (e *GameEngine) LastShot() *ShotRecord {
	if len(e.history) == 0 {
		return nil
	}
	last := e.history[len(e.history)-1]
	return &last
}
