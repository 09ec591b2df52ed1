// Package config provides fleet setup management for the Ship Game.
//
// The config package handles:
//   - Loading fleet setups from JSON files
//   - Setup validation against the game rules
//   - Default setup management
//   - Setup discovery and listing
//
// Setup Format:
//
// Setups are stored as JSON files in the configs directory. Each lists the
// ships to place for each player:
//
//	{
//	  "name": "Classic",
//	  "description": "Five ships per side",
//	  "first":  [{"length": 5, "start": "A1", "orientation": "R"}],
//	  "second": [{"length": 5, "start": "J6", "orientation": "R"}]
//	}
//
// Orientation "R" places a ship along a row and "C" down a column.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	setup, err := manager.LoadSetup("classic")
//	setups, err := manager.ListSetups()
//
// A setup is valid when it has a name and every placement would be accepted
// by a new game: ships at least two long, fully on the board, and never
// overlapping another ship of the same player.
package config
