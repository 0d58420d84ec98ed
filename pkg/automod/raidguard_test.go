package automod

import (
	"testing"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/models"
)

func TestShouldAutoBanYoungAccount(t *testing.T) {
	p := models.DefaultPolicy("g1")
	now := time.Now()
	minAge := 7 * 24 * time.Hour

	created := now.Add(-24 * time.Hour)
	if !ShouldAutoBan(p, created, now, minAge) {
		t.Error("1-day-old account: ShouldAutoBan = false, want true")
	}
}

func TestShouldAutoBanJustUnderBoundary(t *testing.T) {
	p := models.DefaultPolicy("g1")
	now := time.Now()
	minAge := 7 * 24 * time.Hour

	// A 6 días 23:59:59 la cuenta sigue siendo demasiado joven
	created := now.Add(-minAge + time.Second)
	if !ShouldAutoBan(p, created, now, minAge) {
		t.Error("account one second under the minimum age: ShouldAutoBan = false, want true")
	}
}

func TestShouldAutoBanExactBoundaryPasses(t *testing.T) {
	p := models.DefaultPolicy("g1")
	now := time.Now()
	minAge := 7 * 24 * time.Hour

	// Una cuenta con exactamente 7 días pasa
	created := now.Add(-minAge)
	if ShouldAutoBan(p, created, now, minAge) {
		t.Error("exactly-7-days account: ShouldAutoBan = true, want false")
	}
}

func TestShouldAutoBanOldAccount(t *testing.T) {
	p := models.DefaultPolicy("g1")
	now := time.Now()
	minAge := 7 * 24 * time.Hour

	created := now.Add(-30 * 24 * time.Hour)
	if ShouldAutoBan(p, created, now, minAge) {
		t.Error("30-day-old account: ShouldAutoBan = true, want false")
	}
}

func TestShouldAutoBanProtectionDisabled(t *testing.T) {
	p := models.DefaultPolicy("g1")
	p.RaidProtectionEnabled = false
	now := time.Now()

	created := now.Add(-time.Hour)
	if ShouldAutoBan(p, created, now, 7*24*time.Hour) {
		t.Error("protection disabled: ShouldAutoBan = true, want false")
	}
}
