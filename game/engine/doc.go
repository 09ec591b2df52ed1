// Package engine provides the core rules of the Ship Game.
//
// The engine package implements:
//   - Coordinate parsing for the fixed 10x10 board (rows A-J, columns 1-10)
//   - Ship construction with length and board-edge validation
//   - Per-player fleets with overlap checks at placement time
//   - Turn enforcement, hit resolution and win detection
//   - Named fleet setups loaded from JSON files
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. A Ship validates its own geometry and tracks
// damage by dropping hit cells; the engine owns one fleet per player and
// checks that a player's ships never overlap each other.
//
// Usage:
//
//	game := engine.NewEngine()
//
//	game.PlaceShip(engine.First, 2, "A2", engine.Vertical)
//	game.PlaceShip(engine.Second, 2, "H2", engine.Horizontal)
//
//	game.FireTorpedo(engine.First, "H2")
//	game.FireTorpedo(engine.Second, "A2")
//	game.FireTorpedo(engine.First, "H3")
//
//	state := game.CurrentState() // FIRST_WON
//
// Game Rules:
//
// Ships are at least two cells long and lie entirely on the board. Ships can
// be placed at any time. The first player fires first and players alternate
// after every accepted shot, hit or miss. A ship is removed from its fleet
// once every cell has been hit, and the player who sinks the last ship of the
// opposing fleet wins. Once decided, the game rejects all further shots.
package engine
