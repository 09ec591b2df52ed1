package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Placement is a single ship request inside a fleet setup
type Placement struct {
	Length      int    `json:"length"`
	Start       string `json:"start"`
	Orientation string `json:"orientation"`
}

// FleetSetup is a named arrangement of ships for both players, loaded from JSON
type FleetSetup struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	First       []Placement `json:"first"`
	Second      []Placement `json:"second"`
}

// Placements returns the placements listed for player
func (s *FleetSetup) Placements(player Player) []Placement {
	switch player {
	case First:
		return s.First
	case Second:
		return s.Second
	default:
		return nil
	}
}

// ShipCount returns the number of placements for both players combined
func (s *FleetSetup) ShipCount() int {
	return len(s.First) + len(s.Second)
}

// ValidateFleetSetup checks that a setup has a name and that every placement
// would be accepted by a fresh game
func ValidateFleetSetup(setup *FleetSetup) error {
	if setup == nil {
		return fmt.Errorf("setup validation: setup cannot be nil")
	}
	if setup.Name == "" {
		return fmt.Errorf("setup validation: name is required")
	}
	if err := NewEngine().ApplySetup(setup); err != nil {
		return fmt.Errorf("setup validation: %w", err)
	}
	return nil
}

// ApplySetup places every ship listed in setup. Either all placements are
// accepted or the fleets are left exactly as they were.
func (e *GameEngine) ApplySetup(setup *FleetSetup) error {
	if setup == nil {
		return fmt.Errorf("setup cannot be nil")
	}

	saved := map[Player][]*Ship{
		First:  e.fleets[First],
		Second: e.fleets[Second],
	}

	for _, player := range []Player{First, Second} {
		for i, p := range setup.Placements(player) {
			orientation, err := ParseOrientation(p.Orientation)
			if err == nil {
				_, err = e.Place(player, p.Length, p.Start, orientation)
			}
			if err != nil {
				e.fleets[First] = saved[First]
				e.fleets[Second] = saved[Second]
				return fmt.Errorf("%s placement %d (%d at %s %s): %w",
					player, i+1, p.Length, p.Start, p.Orientation, err)
			}
		}
	}

	return nil
}

// LoadFleetSetup loads and validates a fleet setup from a JSON file
func LoadFleetSetup(filename string) (*FleetSetup, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var setup FleetSetup
	if err := json.Unmarshal(data, &setup); err != nil {
		return nil, err
	}

	if err := ValidateFleetSetup(&setup); err != nil {
		return nil, err
	}

	return &setup, nil
}
