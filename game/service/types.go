package service

import (
	"time"

	"github.com/wricardo/ship-game/game/engine"
)

// Event types emitted by game operations
const (
	EventPlace   = "place"
	EventHit     = "hit"
	EventMiss    = "miss"
	EventSunk    = "sunk"
	EventVictory = "victory"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string      `json:"id"`
	SetupName      string      `json:"setup_name"`
	CreatedAt      time.Time   `json:"created_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
	Status         *GameStatus `json:"status"`
}

// GameStatus is a snapshot of a game that is safe to hand to callers
type GameStatus struct {
	State          engine.GameState                    `json:"state"`
	Turn           engine.Player                       `json:"turn"`
	Winner         engine.Player                       `json:"winner,omitempty"`
	RemainingShips map[engine.Player]int               `json:"remaining_ships"`
	Fleets         map[engine.Player][]engine.ShipView `json:"fleets,omitempty"`
	ShotsFired     int                                 `json:"shots_fired"`
	LastShot       *engine.ShotRecord                  `json:"last_shot,omitempty"`
}

// PlaceRequest asks for a ship to be added to a player's fleet
type PlaceRequest struct {
	Player      string `json:"player"`
	Length      int    `json:"length"`
	Start       string `json:"start"`
	Orientation string `json:"orientation"`
}

// PlaceResult contains the result of a placement
type PlaceResult struct {
	Success bool             `json:"success"`
	Ship    *engine.ShipView `json:"ship,omitempty"`
	Message string           `json:"message"`
	Status  *GameStatus      `json:"status"`
	Events  []GameEvent      `json:"events,omitempty"`
}

// FireResult contains the result of a torpedo
type FireResult struct {
	Success bool               `json:"success"`
	Shot    *engine.ShotResult `json:"shot,omitempty"`
	Message string             `json:"message"`
	Status  *GameStatus        `json:"status"`
	Events  []GameEvent        `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string        `json:"type"` // "place", "hit", "miss", "sunk", "victory"
	Player    engine.Player `json:"player"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Target    string        `json:"target,omitempty"`
}

// HistoryOptions configures shot history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated shot history
type HistoryResponse struct {
	Shots       []engine.ShotRecord `json:"shots"`
	TotalShots  int                 `json:"total_shots"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
	TotalPages  int                 `json:"total_pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}

// SetupInfo provides information about a fleet setup file
type SetupInfo struct {
	Filename    string `json:"filename"`
	SetupID     string `json:"setup_id"` // The identifier to use for session creation
	Name        string `json:"name"`     // Display name
	Description string `json:"description"`
	FirstShips  int    `json:"first_ships"`
	SecondShips int    `json:"second_ships"`
}
