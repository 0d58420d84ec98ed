package automod

import (
	"testing"
	"time"
)

func TestRateTrackerUnderLimit(t *testing.T) {
	rt := NewRateTracker(10, 60*time.Second)
	now := time.Now()

	for i := 0; i < 10; i++ {
		count, exceeded := rt.RecordAndCheck("g1", "u1", now.Add(time.Duration(i)*time.Second))
		if exceeded {
			t.Fatalf("message %d: exceeded = true, want false", i+1)
		}
		if count != i+1 {
			t.Errorf("message %d: count = %d, want %d", i+1, count, i+1)
		}
	}
}

func TestRateTrackerEleventhMessageExceeds(t *testing.T) {
	rt := NewRateTracker(10, 60*time.Second)
	now := time.Now()

	// 10 mensajes dentro de la ventana
	for i := 0; i < 10; i++ {
		rt.RecordAndCheck("g1", "u1", now.Add(time.Duration(i)*time.Second))
	}

	count, exceeded := rt.RecordAndCheck("g1", "u1", now.Add(59*time.Second))
	if !exceeded {
		t.Error("11th message inside the window: exceeded = false, want true")
	}
	if count != 11 {
		t.Errorf("count = %d, want 11", count)
	}
}

func TestRateTrackerExactWindowBoundaryExpires(t *testing.T) {
	rt := NewRateTracker(10, 60*time.Second)
	now := time.Now()

	// Una marca con exactamente 60s de edad ya no cuenta
	rt.RecordAndCheck("g1", "u1", now)

	count, exceeded := rt.RecordAndCheck("g1", "u1", now.Add(60*time.Second))
	if exceeded {
		t.Error("exceeded = true, want false")
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (the 60s-old stamp must be expired)", count)
	}
}

func TestRateTrackerWindowsAreIndependent(t *testing.T) {
	rt := NewRateTracker(10, 60*time.Second)
	now := time.Now()

	for i := 0; i < 11; i++ {
		rt.RecordAndCheck("g1", "u1", now)
	}

	// Otro autor y otro servidor empiezan de cero
	if count, exceeded := rt.RecordAndCheck("g1", "u2", now); exceeded || count != 1 {
		t.Errorf("other author: count = %d, exceeded = %v, want 1, false", count, exceeded)
	}
	if count, exceeded := rt.RecordAndCheck("g2", "u1", now); exceeded || count != 1 {
		t.Errorf("other guild: count = %d, exceeded = %v, want 1, false", count, exceeded)
	}
}

func TestRateTrackerForget(t *testing.T) {
	rt := NewRateTracker(10, 60*time.Second)
	now := time.Now()

	for i := 0; i < 11; i++ {
		rt.RecordAndCheck("g1", "u1", now)
	}

	rt.Forget("g1", "u1")

	count, exceeded := rt.RecordAndCheck("g1", "u1", now)
	if exceeded || count != 1 {
		t.Errorf("after Forget: count = %d, exceeded = %v, want 1, false", count, exceeded)
	}
}

func TestRateTrackerSweep(t *testing.T) {
	rt := NewRateTracker(10, 60*time.Second)
	now := time.Now()

	rt.RecordAndCheck("g1", "old", now.Add(-2*time.Minute))
	rt.RecordAndCheck("g1", "fresh", now)

	removed := rt.Sweep(now)
	if removed != 1 {
		t.Errorf("Sweep removed = %d, want 1", removed)
	}
	if got := rt.ActiveWindows(); got != 1 {
		t.Errorf("ActiveWindows = %d, want 1", got)
	}
}
