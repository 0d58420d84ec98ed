package policy

import (
	"errors"
	"sync"
	"testing"

	moderrors "github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
)

// memPersister keeps the policy set in memory and counts saves.
type memPersister struct {
	mu    sync.Mutex
	data  map[string]*models.GuildPolicy
	saves int
}

func newMemPersister() *memPersister {
	return &memPersister{data: make(map[string]*models.GuildPolicy)}
}

func (m *memPersister) Load() (map[string]*models.GuildPolicy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*models.GuildPolicy, len(m.data))
	for k, v := range m.data {
		out[k] = v.Clone()
	}
	return out, nil
}

func (m *memPersister) Save(policies map[string]*models.GuildPolicy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.data = make(map[string]*models.GuildPolicy, len(policies))
	for k, v := range policies {
		m.data[k] = v.Clone()
	}
	return nil
}

func (m *memPersister) saved(guildID string) *models.GuildPolicy {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[guildID]
}

func (m *memPersister) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func TestGetCreatesAndPersistsDefault(t *testing.T) {
	mem := newMemPersister()
	s, err := NewStore(mem)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	p, err := s.Get("g1")
	if err != nil {
		t.Fatalf("Get: %v", err)
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
	want := []string{"spam", "hack", "scam"}
	if len(p.BannedWords) != len(want) {
		t.Fatalf("BannedWords = %v, want %v", p.BannedWords, want)
	}
	for i, w := range want {
		if p.BannedWords[i] != w {
			t.Errorf("BannedWords[%d] = %q, want %q", i, p.BannedWords[i], w)
		}
	}

	// El default se persiste en el primer acceso
	if mem.saved("g1") == nil {
		t.Error("default policy was not persisted on first access")
	}
}

func TestGetReturnsClone(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	p1, _ := s.Get("g1")
	p1.BannedWords = append(p1.BannedWords, "mutado")
	p1.AutomodEnabled = false

	p2, _ := s.Get("g1")
	if len(p2.BannedWords) != 3 {
		t.Errorf("BannedWords = %v, mutation leaked into the store", p2.BannedWords)
	}
	if !p2.AutomodEnabled {
		t.Error("AutomodEnabled mutation leaked into the store")
	}
}

func TestPeekDoesNotCreate(t *testing.T) {
	mem := newMemPersister()
	s, err := NewStore(mem)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, id := range []string{"g1", "g2", "g3"} {
		if _, err := s.Peek(id); !errors.Is(err, moderrors.ErrNotFound) {
			t.Errorf("Peek(%q) error = %v, want ErrNotFound", id, err)
		}
	}

	if got := s.GuildCount(); got != 0 {
		t.Errorf("GuildCount = %d after peeking unknown guilds, want 0", got)
	}
	if got := mem.saveCount(); got != 0 {
		t.Errorf("saves = %d after peeking unknown guilds, want 0", got)
	}
}

func TestPeekReturnsExistingPolicy(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if _, err := s.Get("g1"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	p, err := s.Peek("g1")
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if p.GuildID != "g1" || !p.AutomodEnabled {
		t.Errorf("Peek returned %+v, want the g1 default policy", p)
	}

	// El snapshot es una copia
	p.BannedWords = append(p.BannedWords, "mutado")
	again, _ := s.Peek("g1")
	if len(again.BannedWords) != 3 {
		t.Errorf("BannedWords = %v, mutation leaked into the store", again.BannedWords)
	}
}

func TestMutatePersists(t *testing.T) {
	mem := newMemPersister()
	s, err := NewStore(mem)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	err = s.Mutate("g1", func(p *models.GuildPolicy) {
		p.LogChannelID = "c123"
		p.MaintenanceMode = true
		p.MaintenanceReason = "pruebas"
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	saved := mem.saved("g1")
	if saved == nil {
		t.Fatal("policy was not persisted")
	}
	if saved.LogChannelID != "c123" {
		t.Errorf("LogChannelID = %q, want %q", saved.LogChannelID, "c123")
	}
	if !saved.MaintenanceMode {
		t.Error("MaintenanceMode = false, want true")
	}
}

func TestStoreLoadsExistingPolicies(t *testing.T) {
	mem := newMemPersister()
	mem.data["g1"] = &models.GuildPolicy{
		GuildID:        "g1",
		AutomodEnabled: false,
		BannedWords:    []string{"propio"},
		Warnings:       map[string][]models.Warning{},
	}

	s, err := NewStore(mem)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	p, _ := s.Get("g1")
	if p.AutomodEnabled {
		t.Error("loaded policy was replaced by the default")
	}
	if len(p.BannedWords) != 1 || p.BannedWords[0] != "propio" {
		t.Errorf("BannedWords = %v, want [propio]", p.BannedWords)
	}
}

func TestConcurrentAddWarningLosesNothing(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.AddWarning("g1", "u1", "concurrente", "mod")
		}()
	}
	wg.Wait()

	if got := s.WarningCount("g1", "u1"); got != n {
		t.Errorf("WarningCount = %d, want %d", got, n)
	}
}

func TestConcurrentMutateDifferentGuilds(t *testing.T) {
	s, err := NewStore(newMemPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		guild := "g1"
		if i%2 == 0 {
			guild = "g2"
		}
		wg.Add(1)
		go func(g string) {
			defer wg.Done()
			s.Mutate(g, func(p *models.GuildPolicy) {
				p.BannedWords = append(p.BannedWords, "x")
			})
		}(guild)
	}
	wg.Wait()

	p1, _ := s.Get("g1")
	p2, _ := s.Get("g2")
	if len(p1.BannedWords) != 13 {
		t.Errorf("g1 BannedWords = %d, want 13", len(p1.BannedWords))
	}
	if len(p2.BannedWords) != 13 {
		t.Errorf("g2 BannedWords = %d, want 13", len(p2.BannedWords))
	}
}
