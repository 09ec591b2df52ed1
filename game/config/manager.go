package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/ship-game/game/engine"
	"github.com/wricardo/ship-game/game/service"
)

var (
	ErrConfigNotFound = service.ErrSetupNotFound
	ErrInvalidConfig  = errors.New("invalid setup")
)

// DefaultSetupName is loaded as the default setup when present
const DefaultSetupName = "classic"

// Manager handles fleet setup loading and caching
type Manager struct {
	configDir    string
	defaultSetup *engine.FleetSetup
	setups       map[string]*engine.FleetSetup
	mu           sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		setups:    make(map[string]*engine.FleetSetup),
	}

	m.loadDefaultSetup()
	return m, nil
}

// LoadSetup loads a fleet setup by name
func (m *Manager) LoadSetup(name string) (*engine.FleetSetup, error) {
	name = strings.TrimSuffix(name, ".json")
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	m.mu.RLock()
	if setup, exists := m.setups[name]; exists {
		m.mu.RUnlock()
		return setup, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if setup, exists := m.setups[name]; exists {
		return setup, nil
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
		}
		return nil, fmt.Errorf("failed to read setup file: %w", err)
	}

	var setup engine.FleetSetup
	if err := json.Unmarshal(data, &setup); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, name, err)
	}

	if err := engine.ValidateFleetSetup(&setup); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}

	m.setups[name] = &setup
	return &setup, nil
}

// ListSetups returns information about all valid setups, sorted by ID
func (m *Manager) ListSetups() ([]*service.SetupInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var infos []*service.SetupInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		setup, err := m.LoadSetup(id)
		if err != nil {
			// Skip invalid setups
			continue
		}

		infos = append(infos, &service.SetupInfo{
			Filename:    entry.Name(),
			SetupID:     id,
			Name:        setup.Name,
			Description: setup.Description,
			FirstShips:  len(setup.First),
			SecondShips: len(setup.Second),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].SetupID < infos[j].SetupID })
	return infos, nil
}

// ValidateAll checks every JSON file in the directory and returns the
// validation error for each file name, nil for files that are valid
func (m *Manager) ValidateAll() (map[string]error, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	results := make(map[string]error)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		_, err := m.LoadSetup(entry.Name())
		results[strings.TrimSuffix(entry.Name(), ".json")] = err
	}
	return results, nil
}

// GetDefault returns the default setup
func (m *Manager) GetDefault() *engine.FleetSetup {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultSetup
}

// SetDefault sets the default setup by name
func (m *Manager) SetDefault(name string) error {
	setup, err := m.LoadSetup(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultSetup = setup
	return nil
}

// RefreshCache drops all cached setups and reloads the default
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.setups = make(map[string]*engine.FleetSetup)
	m.mu.Unlock()

	m.loadDefaultSetup()
}

// SaveSetup validates a setup and writes it to disk
func (m *Manager) SaveSetup(name string, setup *engine.FleetSetup) error {
	if err := engine.ValidateFleetSetup(setup); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	name = strings.TrimSuffix(name, ".json")
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: bad setup name %q", ErrInvalidConfig, name)
	}

	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal setup: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.configDir, name+".json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}

	m.mu.Lock()
	m.setups[name] = setup
	m.mu.Unlock()

	return nil
}

// loadDefaultSetup picks classic.json if it is valid, otherwise an empty
// setup so that games start with no ships placed
func (m *Manager) loadDefaultSetup() {
	setup, err := m.LoadSetup(DefaultSetupName)
	if err != nil {
		setup = emptySetup()
	}

	m.mu.Lock()
	m.defaultSetup = setup
	m.mu.Unlock()
}

func emptySetup() *engine.FleetSetup {
	return &engine.FleetSetup{
		Name:        "empty",
		Description: "No ships placed; both players place their own fleets",
	}
}
