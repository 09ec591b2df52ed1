// Package mcp provides the Model Context Protocol server for the Ship Game.
//
// The server calls the game service directly and is served over stdio, so a
// local MCP client (an editor or agent) can create sessions, place ships and
// fire torpedoes.
//
// MCP Tools:
//   - create_session: Create a session, optionally from a fleet setup
//   - list_sessions: List all active sessions
//   - place_ship: Place a ship for a player
//   - fire_torpedo: Fire at the opponent's board
//   - game_state: Turn, remaining ships and the intact cells of each fleet
//   - shot_history: Shot history with pagination
//   - list_setups: List available fleet setups
//   - game_instructions: Full rules text
//
// Rejected operations (bad placement, firing out of turn, unknown session)
// come back as MCP error results rather than protocol errors.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, logger)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
