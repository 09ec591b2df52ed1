// Package session provides session management for the Ship Game.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session cleanup and expiration
//
// Manager is the main session manager. Each service.Session owns its own
// engine.GameEngine, so games in different sessions never share fleets.
// Sessions live in memory only and are gone when the process exits.
//
// Session IDs are 4-character hex strings generated with crypto/rand and
// matched case-insensitively.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", setup)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess.Engine.FireTorpedo(engine.First, "B7")
//
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
package session
