// Package service provides the business logic layer for the Ship Game.
//
// The service package implements:
//   - Multi-session game management
//   - Fleet setup loading and listing
//   - Ship placement and torpedo fire on behalf of a transport
//   - Shot history with pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager loads fleet setups from disk.
//
// Architecture:
//
// The service layer sits between a transport (the MCP tool server or the
// command line) and the game engine. Rule violations such as firing out of
// turn come back as a result with Success set to false and a Message; only
// infrastructure failures such as an unknown session are returned as errors.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, logger)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Fire(ctx, info.ID, "first", "B7")
package service
