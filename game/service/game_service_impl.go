package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wricardo/ship-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	logger   *zap.Logger
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance. A nil logger disables logging.
func NewGameService(sessions SessionManager, configs ConfigManager, logger *zap.Logger) GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		logger:   logger.Named("service"),
	}
}

// CreateSession creates a new game session, optionally pre-populated with a fleet setup
func (s *gameServiceImpl) CreateSession(ctx context.Context, setupName string) (*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var setup *engine.FleetSetup
	var err error
	if setupName != "" {
		setup, err = s.configs.LoadSetup(setupName)
		if err != nil {
			if errors.Is(err, ErrSetupNotFound) {
				available, listErr := s.configs.ListSetups()
				if listErr == nil && len(available) > 0 {
					var ids []string
					for _, info := range available {
						ids = append(ids, info.SetupID)
					}
					return nil, fmt.Errorf("%w: '%s'. Available setups: %v", ErrSetupNotFound, setupName, ids)
				}
			}
			return nil, fmt.Errorf("failed to load setup %s: %w", setupName, err)
		}
	} else {
		setup = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", setup)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("session created",
		zap.String("session", session.ID),
		zap.String("setup", setupLabel(session.Setup)),
		zap.Int("first_ships", session.Engine.RemainingShipCount(engine.First)),
		zap.Int("second_ships", session.Engine.RemainingShipCount(engine.Second)),
	)

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Write lock: UpdateLastAccessed mutates the session
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	s.logger.Info("session deleted", zap.String("session", sessionID))
	return nil
}

// PlaceShip adds a ship to one player's fleet. Rule violations are reported
// through PlaceResult.Success rather than as an error.
func (s *gameServiceImpl) PlaceShip(ctx context.Context, sessionID string, req PlaceRequest) (*PlaceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	log := s.logger.With(
		zap.String("session", sessionID),
		zap.String("player", req.Player),
		zap.Int("length", req.Length),
		zap.String("start", req.Start),
		zap.String("orientation", req.Orientation),
	)

	owner, ship, err := placeShip(sess.Engine, req)
	if err != nil {
		log.Warn("placement rejected", zap.Error(err))
		return &PlaceResult{
			Success: false,
			Message: err.Error(),
			Status:  buildStatus(sess.Engine, false),
		}, nil
	}

	view := ship.View()
	log.Debug("ship placed")

	return &PlaceResult{
		Success: true,
		Ship:    &view,
		Message: fmt.Sprintf("%s placed a %d-cell ship at %s", owner, view.Length, strings.Join(view.Intact, ",")),
		Status:  buildStatus(sess.Engine, false),
		Events: []GameEvent{{
			Type:      EventPlace,
			Player:    owner,
			Message:   fmt.Sprintf("Ship of length %d placed %s from %s", view.Length, view.Orientation, view.Intact[0]),
			Timestamp: time.Now(),
			Target:    view.Intact[0],
		}},
	}, nil
}

func placeShip(eng *engine.GameEngine, req PlaceRequest) (engine.Player, *engine.Ship, error) {
	player, err := engine.ParsePlayer(req.Player)
	if err != nil {
		return "", nil, err
	}
	orientation, err := engine.ParseOrientation(req.Orientation)
	if err != nil {
		return "", nil, err
	}
	ship, err := eng.Place(player, req.Length, req.Start, orientation)
	return player, ship, err
}

// Fire resolves a torpedo for the given player. Out-of-turn and post-game
// shots are reported through FireResult.Success rather than as an error.
func (s *gameServiceImpl) Fire(ctx context.Context, sessionID, player, target string) (*FireResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	log := s.logger.With(
		zap.String("session", sessionID),
		zap.String("player", player),
		zap.String("target", target),
	)

	shooter := engine.Player(strings.ToLower(strings.TrimSpace(player)))
	shot, err := sess.Engine.Fire(shooter, target)
	if err != nil {
		log.Warn("shot rejected", zap.Error(err))
		return &FireResult{
			Success: false,
			Message: rejectionMessage(err),
			Status:  buildStatus(sess.Engine, false),
		}, nil
	}

	events := shotEvents(shot)
	log.Debug("shot resolved",
		zap.Bool("hit", shot.Hit),
		zap.Bool("sunk", shot.Sunk),
		zap.String("state", shot.State.String()),
	)
	if shot.State != engine.Unfinished {
		log.Info("game finished",
			zap.String("state", shot.State.String()),
			zap.Int("shots", len(sess.Engine.History())),
		)
	}

	return &FireResult{
		Success: true,
		Shot:    &shot,
		Message: events[len(events)-1].Message,
		Status:  buildStatus(sess.Engine, false),
		Events:  events,
	}, nil
}

// GetGameState returns a snapshot of the game including both fleets
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*GameStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return buildStatus(sess.Engine, true), nil
}

// GetShotHistory returns paginated shot history
func (s *gameServiceImpl) GetShotHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.History()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var shots []engine.ShotRecord
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			shots = append(shots, history[i])
		}
	} else if start < total {
		shots = history[start:end]
	}

	if shots == nil {
		shots = []engine.ShotRecord{}
	}

	return &HistoryResponse{
		Shots:       shots,
		TotalShots:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListSetups returns available fleet setups
func (s *gameServiceImpl) ListSetups(ctx context.Context) ([]*SetupInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.configs.ListSetups()
}

// LoadSetup loads a specific fleet setup
func (s *gameServiceImpl) LoadSetup(ctx context.Context, setupName string) (*engine.FleetSetup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.configs.LoadSetup(setupName)
}

func (s *gameServiceImpl) sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		SetupName:      setupLabel(session.Setup),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		Status:         buildStatus(session.Engine, false),
	}
}

func setupLabel(setup *engine.FleetSetup) string {
	if setup == nil || setup.Name == "" {
		return "empty"
	}
	return setup.Name
}

// buildStatus snapshots an engine. Fleets are only included on request since
// they reveal both boards.
func buildStatus(eng *engine.GameEngine, withFleets bool) *GameStatus {
	status := &GameStatus{
		State: eng.CurrentState(),
		Turn:  eng.Turn(),
		RemainingShips: map[engine.Player]int{
			engine.First:  eng.RemainingShipCount(engine.First),
			engine.Second: eng.RemainingShipCount(engine.Second),
		},
		ShotsFired: len(eng.History()),
		LastShot:   eng.LastShot(),
	}
	if winner, ok := eng.Winner(); ok {
		status.Winner = winner
	}
	if withFleets {
		status.Fleets = map[engine.Player][]engine.ShipView{
			engine.First:  eng.Fleet(engine.First),
			engine.Second: eng.Fleet(engine.Second),
		}
	}
	return status
}

// shotEvents generates events from an accepted shot. The last event always
// carries the headline message for the shot.
func shotEvents(shot engine.ShotResult) []GameEvent {
	now := time.Now()
	ev := func(kind, msg string) GameEvent {
		return GameEvent{Type: kind, Player: shot.Player, Message: msg, Timestamp: now, Target: shot.Target}
	}

	if !shot.Hit {
		return []GameEvent{ev(EventMiss, fmt.Sprintf("%s fired at %s: miss", shot.Player, shot.Target))}
	}

	events := []GameEvent{ev(EventHit, fmt.Sprintf("%s fired at %s: hit", shot.Player, shot.Target))}
	if shot.Sunk {
		events = append(events, ev(EventSunk, fmt.Sprintf("%s sank a ship of %s", shot.Player, shot.Player.Opponent())))
	}
	if shot.State != engine.Unfinished {
		events = append(events, ev(EventVictory, fmt.Sprintf("%s wins! (%s)", shot.Player, shot.State)))
	}
	return events
}

func rejectionMessage(err error) string {
	if errors.Is(err, engine.ErrGameOver) {
		return "The game is already over"
	}
	return err.Error()
}
