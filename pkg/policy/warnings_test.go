package policy

import (
	"testing"

	"github.com/PancyStudios/SentinelBotGo/pkg/errors"
)

func TestAddWarningReturnsCount(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for i := 1; i <= 3; i++ {
		count, w, err := s.AddWarning("g1", "u1", "razón", "mod1")
		if err != nil {
			t.Fatalf("AddWarning %d: %v", i, err)
		}
		if count != i {
			t.Errorf("AddWarning %d: count = %d, want %d", i, count, i)
		}
		if w.ID == "" {
			t.Error("warning ID is empty")
		}
		if w.Reason != "razón" {
			t.Errorf("Reason = %q, want %q", w.Reason, "razón")
		}
	}
}

func TestRemoveWarningOneBased(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	s.AddWarning("g1", "u1", "primera", "mod1")
	s.AddWarning("g1", "u1", "segunda", "mod1")

	removed, err := s.RemoveWarning("g1", "u1", 1)
	if err != nil {
		t.Fatalf("RemoveWarning: %v", err)
	}
	if removed.Reason != "primera" {
		t.Errorf("removed = %q, want the oldest (%q)", removed.Reason, "primera")
	}

	left := s.Warnings("g1", "u1")
	if len(left) != 1 || left[0].Reason != "segunda" {
		t.Errorf("remaining warnings = %v, want only 'segunda'", left)
	}
}

func TestRemoveWarningInvalidIndex(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	s.AddWarning("g1", "u1", "única", "mod1")

	for _, index := range []int{0, -1, 2} {
		_, err := s.RemoveWarning("g1", "u1", index)
		if err == nil {
			t.Errorf("index %d: err = nil, want ErrInvalidWarningIndex", index)
			continue
		}
		if !errors.IsNotFound(err) {
			t.Errorf("index %d: err = %v, want a not-found error", index, err)
		}
	}

	// El libro queda intacto
	if got := s.WarningCount("g1", "u1"); got != 1 {
		t.Errorf("WarningCount = %d, want 1", got)
	}
}

func TestRemoveLastWarningClearsEntry(t *testing.T) {
	mem := newMemPersister()
	s, err := NewStore(mem)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	s.AddWarning("g1", "u1", "única", "mod1")
	if _, err := s.RemoveWarning("g1", "u1", 1); err != nil {
		t.Fatalf("RemoveWarning: %v", err)
	}

	if got := s.WarningCount("g1", "u1"); got != 0 {
		t.Errorf("WarningCount = %d, want 0", got)
	}

	// El documento persistido ya no lista al miembro
	saved := mem.saved("g1")
	if saved == nil {
		t.Fatal("policy was not persisted")
	}
	if _, ok := saved.Warnings["u1"]; ok {
		t.Error("empty warning list still present in the persisted document")
	}
}

func TestWarningsReturnsCopy(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	s.AddWarning("g1", "u1", "original", "mod1")

	list := s.Warnings("g1", "u1")
	list[0].Reason = "mutada"

	if got := s.Warnings("g1", "u1")[0].Reason; got != "original" {
		t.Errorf("Reason = %q, mutation leaked into the ledger", got)
	}
}
