package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/ship-game/game/engine"
	"github.com/wricardo/ship-game/game/service"
)

func createValidSetup() *engine.FleetSetup {
	return &engine.FleetSetup{
		Name:        "Test Setup",
		Description: "Test fleet setup",
		First: []engine.Placement{
			{Length: 3, Start: "A1", Orientation: "R"},
			{Length: 2, Start: "C5", Orientation: "C"},
		},
		Second: []engine.Placement{
			{Length: 4, Start: "J1", Orientation: "R"},
		},
	}
}

func writeSetupFile(t *testing.T, dir, name string, setup *engine.FleetSetup) {
	t.Helper()
	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write setup file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory with classic", func(t *testing.T) {
		dir := t.TempDir()
		classic := createValidSetup()
		classic.Name = "Classic"
		writeSetupFile(t, dir, "classic", classic)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Classic" {
			t.Errorf("Expected classic as default, got %s", manager.GetDefault().Name)
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("missing default setup", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		def := manager.GetDefault()
		if def == nil || def.ShipCount() != 0 {
			t.Errorf("Expected empty default setup, got %+v", def)
		}
	})
}

func TestManager_LoadSetup(t *testing.T) {
	dir := t.TempDir()
	writeSetupFile(t, dir, "test", createValidSetup())

	invalid := createValidSetup()
	invalid.Second = append(invalid.Second, engine.Placement{Length: 2, Start: "J4", Orientation: "R"})
	writeSetupFile(t, dir, "overlapping", invalid)

	os.WriteFile(filepath.Join(dir, "malformed.json"), []byte("{ not json"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing setup", func(t *testing.T) {
		setup, err := manager.LoadSetup("test")
		if err != nil {
			t.Fatalf("Failed to load setup: %v", err)
		}
		if setup.Name != "Test Setup" || setup.ShipCount() != 3 {
			t.Errorf("Unexpected setup: %+v", setup)
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		if _, err := manager.LoadSetup("test.json"); err != nil {
			t.Errorf("Failed to load setup with extension: %v", err)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		first, _ := manager.LoadSetup("test")
		second, _ := manager.LoadSetup("test")
		if first != second {
			t.Error("Expected cached setup to be returned")
		}
	})

	t.Run("load non-existent setup", func(t *testing.T) {
		_, err := manager.LoadSetup("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
		if !errors.Is(err, service.ErrSetupNotFound) {
			t.Errorf("Expected service.ErrSetupNotFound, got %v", err)
		}
	})

	t.Run("reject path traversal", func(t *testing.T) {
		_, err := manager.LoadSetup("../test")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("load invalid setup", func(t *testing.T) {
		_, err := manager.LoadSetup("overlapping")
		if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, engine.ErrOverlap) {
			t.Errorf("Expected ErrInvalidConfig wrapping ErrOverlap, got %v", err)
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		_, err := manager.LoadSetup("malformed")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestManager_ListSetups(t *testing.T) {
	dir := t.TempDir()
	writeSetupFile(t, dir, "beta", createValidSetup())
	writeSetupFile(t, dir, "alpha", createValidSetup())
	writeSetupFile(t, dir, "broken", &engine.FleetSetup{})
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644)
	os.Mkdir(filepath.Join(dir, "nested.json"), 0755)

	manager, _ := NewManager(dir)
	setups, err := manager.ListSetups()
	if err != nil {
		t.Fatalf("Failed to list setups: %v", err)
	}

	if len(setups) != 2 {
		t.Fatalf("Expected 2 valid setups, got %d", len(setups))
	}
	if setups[0].SetupID != "alpha" || setups[1].SetupID != "beta" {
		t.Errorf("Expected sorted IDs alpha, beta; got %s, %s", setups[0].SetupID, setups[1].SetupID)
	}
	if setups[0].FirstShips != 2 || setups[0].SecondShips != 1 {
		t.Errorf("Unexpected ship counts: %+v", setups[0])
	}
	if setups[0].Filename != "alpha.json" {
		t.Errorf("Expected alpha.json, got %s", setups[0].Filename)
	}
}

func TestManager_ValidateAll(t *testing.T) {
	dir := t.TempDir()
	writeSetupFile(t, dir, "good", createValidSetup())
	writeSetupFile(t, dir, "nameless", &engine.FleetSetup{})

	manager, _ := NewManager(dir)
	results, err := manager.ValidateAll()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results["good"] != nil {
		t.Errorf("Expected good to be valid, got %v", results["good"])
	}
	if results["nameless"] == nil {
		t.Error("Expected nameless to be invalid")
	}
}

func TestManager_SaveSetup(t *testing.T) {
	dir := t.TempDir()
	manager, _ := NewManager(dir)

	t.Run("save valid setup", func(t *testing.T) {
		if err := manager.SaveSetup("saved", createValidSetup()); err != nil {
			t.Fatalf("Failed to save setup: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "saved.json")); err != nil {
			t.Errorf("Expected file to be written: %v", err)
		}

		loaded, err := engine.LoadFleetSetup(filepath.Join(dir, "saved.json"))
		if err != nil {
			t.Fatalf("Failed to read saved setup back: %v", err)
		}
		if loaded.ShipCount() != 3 {
			t.Errorf("Expected 3 ships, got %d", loaded.ShipCount())
		}
	})

	t.Run("save invalid setup", func(t *testing.T) {
		err := manager.SaveSetup("bad", &engine.FleetSetup{Name: "bad", First: []engine.Placement{{Length: 1, Start: "A1", Orientation: "R"}}})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, "bad.json")); !os.IsNotExist(statErr) {
			t.Error("Expected invalid setup not to be written")
		}
	})
}

func TestManager_SetDefaultAndRefresh(t *testing.T) {
	dir := t.TempDir()
	writeSetupFile(t, dir, "custom", createValidSetup())

	manager, _ := NewManager(dir)
	if err := manager.SetDefault("custom"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}
	if manager.GetDefault().Name != "Test Setup" {
		t.Errorf("Expected custom default, got %s", manager.GetDefault().Name)
	}
	if err := manager.SetDefault("missing"); err == nil {
		t.Error("Expected error for missing default")
	}

	updated := createValidSetup()
	updated.Name = "Updated"
	writeSetupFile(t, dir, "custom", updated)

	cached, _ := manager.LoadSetup("custom")
	if cached.Name != "Test Setup" {
		t.Errorf("Expected cached setup before refresh, got %s", cached.Name)
	}

	manager.RefreshCache()
	fresh, _ := manager.LoadSetup("custom")
	if fresh.Name != "Updated" {
		t.Errorf("Expected refreshed setup, got %s", fresh.Name)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	writeSetupFile(t, dir, "shared", createValidSetup())
	manager, _ := NewManager(dir)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := manager.LoadSetup("shared"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error: %v", err)
	}
}
