package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/ship-game/game/engine"
)

// ErrSetupNotFound is wrapped by ConfigManager.LoadSetup when no setup has the requested name
var ErrSetupNotFound = errors.New("setup not found")

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, setupName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	PlaceShip(ctx context.Context, sessionID string, req PlaceRequest) (*PlaceResult, error)
	Fire(ctx context.Context, sessionID, player, target string) (*FireResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*GameStatus, error)
	GetShotHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Fleet setups
	ListSetups(ctx context.Context) ([]*SetupInfo, error)
	LoadSetup(ctx context.Context, setupName string) (*engine.FleetSetup, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, setup *engine.FleetSetup) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, setup *engine.FleetSetup) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles fleet setup loading
type ConfigManager interface {
	LoadSetup(name string) (*engine.FleetSetup, error)
	ListSetups() ([]*SetupInfo, error)
	GetDefault() *engine.FleetSetup
	SaveSetup(name string, setup *engine.FleetSetup) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Setup          *engine.FleetSetup
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
