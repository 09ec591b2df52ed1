package engine

import (
	"strings"
	"time"
)

// Player identifies one of the two sides of a game
type Player string

const (
	First  Player = "first"
	Second Player = "second"
)

// Valid reports whether p is one of the two known players
func (p Player) Valid() bool {
	return p == First || p == Second
}

// Opponent returns the other player. An invalid player has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return ""
	}
}

func (p Player) String() string {
	return string(p)
}

// ParsePlayer converts a player name such as "first" into a Player
func ParsePlayer(s string) (Player, error) {
	p := Player(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrInvalidPlayer
	}
	return p, nil
}

// GameState is the overall outcome of a game
type GameState string

const (
	Unfinished GameState = "UNFINISHED"
	FirstWon   GameState = "FIRST_WON"
	SecondWon  GameState = "SECOND_WON"
)

func (s GameState) String() string {
	return string(s)
}

// winStateFor returns the state recorded when p sinks the last opposing ship
func winStateFor(p Player) GameState {
	if p == First {
		return FirstWon
	}
	return SecondWon
}

// Orientation is the direction a ship extends from its start coordinate
type Orientation int

const (
	// Horizontal ships occupy increasing column numbers in the same row.
	Horizontal Orientation = iota
	// Vertical ships occupy increasing row letters in the same column.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation accepts "R"/"horizontal" and "C"/"vertical" in any case
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "row", "h", "horizontal":
		return Horizontal, nil
	case "c", "col", "column", "v", "vertical":
		return Vertical, nil
	default:
		return 0, ErrInvalidOrientation
	}
}

// Board constants
const (
	BoardSize     = 10
	MinShipLength = 2
	MaxShipLength = BoardSize
	FirstRow      = 'A'
	LastRow       = FirstRow + BoardSize - 1
)

// ShotResult describes the outcome of an accepted torpedo
type ShotResult struct {
	Player Player    `json:"player"`
	Target string    `json:"target"`
	Hit    bool      `json:"hit"`
	Sunk   bool      `json:"sunk"`
	State  GameState `json:"state"`
	Turn   Player    `json:"turn"`
	Ship   *ShipView `json:"ship,omitempty"`
}

// ShotRecord represents a single accepted shot in the game history
type ShotRecord struct {
	Number    int       `json:"number"`
	Player    Player    `json:"player"`
	Target    string    `json:"target"`
	Hit       bool      `json:"hit"`
	Sunk      bool      `json:"sunk"`
	Won       bool      `json:"won"`
	Timestamp time.Time `json:"timestamp"`
}

// ShipView is a read-only snapshot of a ship
type ShipView struct {
	Length      int      `json:"length"`
	Orientation string   `json:"orientation"`
	Intact      []string `json:"intact"`
}
