package policy

import (
	"fmt"
	"sync"

	moderrors "github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
)

// Store owns every GuildPolicy. Each guild has its own mutex so two
// concurrent mutations of the same guild never lose an update, while
// operations on different guilds never contend.
//
// Mutations apply in memory first and are then flushed through the
// Persister. A failed flush keeps the in-memory change (decisions stay
// consistent with what was logically committed) and surfaces a
// persistence error to the caller for logging; it is not retried.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]*entry
	persister Persister
	saveMu    sync.Mutex
}

type entry struct {
	mu     sync.Mutex
	policy *models.GuildPolicy
}

// NewStore creates a Store and loads the existing policy set from the
// persister.
func NewStore(p Persister) (*Store, error) {
	loaded, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("cargando políticas: %w", err)
	}

	s := &Store{
		entries:   make(map[string]*entry, len(loaded)),
		persister: p,
	}
	for guildID, pol := range loaded {
		s.entries[guildID] = &entry{policy: pol}
	}

	logger.Info(fmt.Sprintf("Políticas cargadas: %d servidores", len(loaded)), "PolicyStore")
	return s, nil
}

// getEntry returns the guild's entry, creating the default policy on first
// reference. The second return value reports whether it was just created.
func (s *Store) getEntry(guildID string) (*entry, bool) {
	s.mu.RLock()
	e, ok := s.entries[guildID]
	s.mu.RUnlock()
	if ok {
		return e, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[guildID]; ok {
		return e, false
	}

	e = &entry{policy: models.DefaultPolicy(guildID)}
	s.entries[guildID] = e
	return e, true
}

// Get returns a snapshot of the guild's policy, creating and persisting
// the documented default on first access. The returned error is only ever
// a persistence failure for that initial flush; the snapshot is always
// valid.
func (s *Store) Get(guildID string) (*models.GuildPolicy, error) {
	e, created := s.getEntry(guildID)

	e.mu.Lock()
	snapshot := e.policy.Clone()
	e.mu.Unlock()

	var err error
	if created {
		err = s.flush()
	}
	return snapshot, err
}

// Peek returns a snapshot of the guild's policy without creating one.
// Unknown guilds return ErrNotFound and nothing is persisted, so callers
// fed with unvalidated ids cannot grow the store.
func (s *Store) Peek(guildID string) (*models.GuildPolicy, error) {
	s.mu.RLock()
	e, ok := s.entries[guildID]
	s.mu.RUnlock()
	if !ok {
		return nil, moderrors.ErrNotFound
	}

	e.mu.Lock()
	snapshot := e.policy.Clone()
	e.mu.Unlock()
	return snapshot, nil
}

// Mutate applies fn to the guild's policy under its lock and then flushes
// the entire policy set. fn must not block on network calls.
func (s *Store) Mutate(guildID string, fn func(*models.GuildPolicy)) error {
	e, _ := s.getEntry(guildID)

	e.mu.Lock()
	fn(e.policy)
	e.mu.Unlock()

	return s.flush()
}

// flush snapshots every policy and hands the set to the persister. The
// save mutex serializes flushes so a mutate call that starts after another
// returns can never observe a partial write.
func (s *Store) flush() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	snapshot := s.snapshot()
	if err := s.persister.Save(snapshot); err != nil {
		return moderrors.Persistence(err)
	}
	return nil
}

// snapshot clones the full policy set, taking each guild lock briefly.
func (s *Store) snapshot() map[string]*models.GuildPolicy {
	s.mu.RLock()
	entries := make(map[string]*entry, len(s.entries))
	for id, e := range s.entries {
		entries[id] = e
	}
	s.mu.RUnlock()

	out := make(map[string]*models.GuildPolicy, len(entries))
	for id, e := range entries {
		e.mu.Lock()
		out[id] = e.policy.Clone()
		e.mu.Unlock()
	}
	return out
}

// GuildCount returns the number of guilds with a policy.
func (s *Store) GuildCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GuildIDs returns the ids of every guild with a policy.
func (s *Store) GuildIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}
