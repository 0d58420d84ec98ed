package policy

import (
	"time"

	moderrors "github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/google/uuid"
)

// AddWarning appends a warning to the member's ledger and returns the new
// count plus the warning that was recorded. A persistence error does not
// undo the in-memory append; the caller logs it and escalation still runs
// on the returned count.
func (s *Store) AddWarning(guildID, memberID, reason, moderator string) (int, models.Warning, error) {
	w := models.Warning{
		ID:        uuid.New().String(),
		Reason:    reason,
		Moderator: moderator,
		IssuedAt:  time.Now(),
	}

	e, _ := s.getEntry(guildID)

	e.mu.Lock()
	e.policy.Warnings[memberID] = append(e.policy.Warnings[memberID], w)
	count := len(e.policy.Warnings[memberID])
	e.mu.Unlock()

	return count, w, s.flush()
}

// RemoveWarning retracts the warning at the 1-based index. An index
// outside [1, len] is rejected with ErrInvalidWarningIndex and leaves the
// ledger untouched.
func (s *Store) RemoveWarning(guildID, memberID string, index int) (models.Warning, error) {
	e, _ := s.getEntry(guildID)

	e.mu.Lock()
	list := e.policy.Warnings[memberID]
	if index < 1 || index > len(list) {
		e.mu.Unlock()
		return models.Warning{}, moderrors.ErrInvalidWarningIndex
	}

	removed := list[index-1]
	list = append(list[:index-1], list[index:]...)
	if len(list) == 0 {
		delete(e.policy.Warnings, memberID)
	} else {
		e.policy.Warnings[memberID] = list
	}
	e.mu.Unlock()

	return removed, s.flush()
}

// Warnings returns a copy of the member's warning list, oldest first.
func (s *Store) Warnings(guildID, memberID string) []models.Warning {
	e, _ := s.getEntry(guildID)

	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.policy.Warnings[memberID]
	out := make([]models.Warning, len(list))
	copy(out, list)
	return out
}

// WarningCount returns the member's current warning count.
func (s *Store) WarningCount(guildID, memberID string) int {
	e, _ := s.getEntry(guildID)

	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.policy.Warnings[memberID])
}
