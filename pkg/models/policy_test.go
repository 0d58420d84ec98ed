package models

import "testing"

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy("g1")

	if p.GuildID != "g1" {
		t.Errorf("GuildID = %q, want %q", p.GuildID, "g1")
	}
	if !p.AutomodEnabled {
		t.Error("AutomodEnabled = false, want true")
	}
	if !p.RaidProtectionEnabled {
		t.Error("RaidProtectionEnabled = false, want true")
	}
	if p.MaintenanceMode {
		t.Error("MaintenanceMode = true, want false")
	}
	if len(p.BannedWords) != 3 {
		t.Errorf("BannedWords = %v, want 3 defaults", p.BannedWords)
	}
}

func TestDefaultPolicyCopiesWordList(t *testing.T) {
	p := DefaultPolicy("g1")
	p.BannedWords[0] = "mutado"

	if DefaultBannedWords[0] != "spam" {
		t.Error("mutating a policy changed the shared default list")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := DefaultPolicy("g1")
	p.Warnings["u1"] = []Warning{{ID: "w1", Reason: "original"}}

	cp := p.Clone()
	cp.BannedWords[0] = "mutado"
	cp.Warnings["u1"][0].Reason = "mutada"
	cp.Warnings["u2"] = []Warning{{ID: "w2"}}

	if p.BannedWords[0] != "spam" {
		t.Error("clone shares the banned-word slice")
	}
	if p.Warnings["u1"][0].Reason != "original" {
		t.Error("clone shares the warning entries")
	}
	if _, ok := p.Warnings["u2"]; ok {
		t.Error("clone shares the warnings map")
	}
}

func TestFillDefaults(t *testing.T) {
	p := &GuildPolicy{}
	p.FillDefaults("g1")

	if p.GuildID != "g1" {
		t.Errorf("GuildID = %q, want %q", p.GuildID, "g1")
	}
	if p.BannedWords == nil {
		t.Error("BannedWords = nil, want empty slice")
	}
	if p.Warnings == nil {
		t.Error("Warnings = nil, want empty map")
	}

	// Un documento completo no se toca
	full := DefaultPolicy("g2")
	full.BannedWords = []string{"propio"}
	full.FillDefaults("otro")
	if full.GuildID != "g2" {
		t.Errorf("GuildID = %q, want %q", full.GuildID, "g2")
	}
	if len(full.BannedWords) != 1 {
		t.Errorf("BannedWords = %v, want [propio]", full.BannedWords)
	}
}

func TestHasBannedWord(t *testing.T) {
	p := DefaultPolicy("g1")

	if !p.HasBannedWord("spam") {
		t.Error("HasBannedWord(spam) = false, want true")
	}
	if p.HasBannedWord("limpio") {
		t.Error("HasBannedWord(limpio) = true, want false")
	}
}
