package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/ship-game/game/engine"
)

func createTestSetup() *engine.FleetSetup {
	return &engine.FleetSetup{
		Name:        "Test Setup",
		Description: "Test fleet setup",
		First: []engine.Placement{
			{Length: 2, Start: "A2", Orientation: "C"},
		},
		Second: []engine.Placement{
			{Length: 2, Start: "H2", Orientation: "R"},
		},
	}
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()

	t.Run("create with custom ID", func(t *testing.T) {
		session, err := manager.Create("test-session", setup)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID != "test-session" {
			t.Errorf("Expected session ID 'test-session', got '%s'", session.ID)
		}
		if session.Engine == nil {
			t.Fatal("Expected engine to be initialized")
		}
		if session.Engine.RemainingShipCount(engine.First) != 1 {
			t.Errorf("Expected setup to be applied, got %d ships", session.Engine.RemainingShipCount(engine.First))
		}
	})

	t.Run("create with auto-generated ID", func(t *testing.T) {
		session, err := manager.Create("", setup)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character session ID, got %d characters", len(session.ID))
		}
	})

	t.Run("create without setup", func(t *testing.T) {
		session, err := manager.Create("empty", nil)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.Engine.RemainingShipCount(engine.First) != 0 {
			t.Error("Expected empty fleets")
		}
	})

	t.Run("duplicate session ID", func(t *testing.T) {
		_, err := manager.Create("test-session", setup)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
		}
	})

	t.Run("case-insensitive duplicate check", func(t *testing.T) {
		_, err := manager.Create("TEST-SESSION", setup)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists for case variant, got %v", err)
		}
	})

	t.Run("padded ID", func(t *testing.T) {
		_, err := manager.Create(" padded ", setup)
		if err != ErrInvalidSessionID {
			t.Errorf("Expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("invalid setup", func(t *testing.T) {
		invalid := createTestSetup()
		invalid.First = append(invalid.First, engine.Placement{Length: 2, Start: "B1", Orientation: "R"})
		_, err := manager.Create("invalid-test", invalid)
		if !errors.Is(err, engine.ErrOverlap) {
			t.Errorf("Expected ErrOverlap, got %v", err)
		}
		if _, err := manager.Get("invalid-test"); err != ErrSessionNotFound {
			t.Error("Expected failed creation not to register a session")
		}
	})
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	created, _ := manager.Create("get-test", createTestSetup())

	t.Run("get existing session", func(t *testing.T) {
		session, err := manager.Get("get-test")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected session ID '%s', got '%s'", created.ID, session.ID)
		}
	})

	t.Run("case-insensitive get", func(t *testing.T) {
		session, err := manager.Get("GET-TEST")
		if err != nil {
			t.Fatalf("Failed to get session with different case: %v", err)
		}
		if session != created {
			t.Errorf("Expected same session regardless of case")
		}
	})

	t.Run("get non-existent session", func(t *testing.T) {
		_, err := manager.Get("non-existent")
		if err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestManager_GetOrCreate(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()

	first, err := manager.GetOrCreate("new-session", setup)
	if err != nil {
		t.Fatalf("Failed to get or create session: %v", err)
	}

	second, err := manager.GetOrCreate("new-session", nil)
	if err != nil {
		t.Fatalf("Failed to get existing session: %v", err)
	}
	if first != second {
		t.Error("Expected the existing session to be returned")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", manager.Count())
	}
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()
	manager.Create("delete-test", setup)

	t.Run("delete existing session", func(t *testing.T) {
		if err := manager.Delete("delete-test"); err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}
		if _, err := manager.Get("delete-test"); err != ErrSessionNotFound {
			t.Error("Expected session to be deleted")
		}
	})

	t.Run("delete non-existent session", func(t *testing.T) {
		if err := manager.Delete("non-existent"); err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("case-insensitive delete", func(t *testing.T) {
		manager.Create("case-test", setup)
		if err := manager.Delete("CASE-TEST"); err != nil {
			t.Fatalf("Failed to delete with different case: %v", err)
		}
		if _, err := manager.Get("case-test"); err != ErrSessionNotFound {
			t.Error("Expected session to be deleted regardless of case")
		}
	})
}

func TestManager_List(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()

	ids := []string{"list-1", "list-2", "list-3"}
	for _, id := range ids {
		manager.Create(id, setup)
	}

	found := make(map[string]bool)
	for _, s := range manager.List() {
		found[s.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			t.Errorf("Session %s not found in list", id)
		}
	}
}

func TestManager_CleanupExpired(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()

	active, _ := manager.Create("active", setup)
	expired, _ := manager.Create("expired", setup)

	expired.LastAccessedAt = time.Now().Add(-2 * time.Hour)
	active.LastAccessedAt = time.Now()

	if deleted := manager.CleanupExpiredSessions(1 * time.Hour); deleted != 1 {
		t.Errorf("Expected 1 session to be deleted, got %d", deleted)
	}
	if _, err := manager.Get("expired"); err != ErrSessionNotFound {
		t.Error("Expected expired session to be deleted")
	}
	if _, err := manager.Get("active"); err != nil {
		t.Error("Expected active session to still exist")
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()

	session, _ := manager.Create("access-test", createTestSetup())
	originalTime := session.LastAccessedAt

	time.Sleep(10 * time.Millisecond)

	if err := manager.UpdateLastAccessed("access-test"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !session.LastAccessedAt.After(originalTime) {
		t.Error("Expected LastAccessedAt to be updated")
	}
	if err := manager.UpdateLastAccessed("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := ""
			if n%2 == 0 {
				id = fmt.Sprintf("named-%d", n)
			}
			if _, err := manager.Create(id, setup); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}
	if manager.Count() != 100 {
		t.Errorf("Expected 100 sessions, got %d", manager.Count())
	}
}

func TestManager_SessionIsolation(t *testing.T) {
	manager := NewManager()
	setup := createTestSetup()

	session1, _ := manager.Create("iso-1", setup)
	session2, _ := manager.Create("iso-2", setup)

	session1.Engine.FireTorpedo(engine.First, "H2")
	session1.Engine.FireTorpedo(engine.Second, "J1")
	session1.Engine.FireTorpedo(engine.First, "H3")

	if session1.Engine.CurrentState() != engine.FirstWon {
		t.Fatalf("Expected session 1 to be won, got %s", session1.Engine.CurrentState())
	}
	if session2.Engine.CurrentState() != engine.Unfinished {
		t.Error("Session 2 should not be affected by session 1 shots")
	}
	if session2.Engine.RemainingShipCount(engine.Second) != 1 {
		t.Error("Sessions should have independent fleets")
	}
}

func TestManager_SessionIDGeneration(t *testing.T) {
	manager := NewManager()
	generated := make(map[string]bool)

	for i := 0; i < 50; i++ {
		session, err := manager.Create("", nil)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if generated[session.ID] {
			t.Errorf("Duplicate session ID generated: %s", session.ID)
		}
		generated[session.ID] = true

		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character ID, got %d", len(session.ID))
		}
	}
}
