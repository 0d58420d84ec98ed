package automod

import (
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/models"
)

// ShouldAutoBan decides at join time whether the new member is banned by
// the raid guard: protection enabled and account age strictly under the
// minimum. An account exactly minAge old passes. The check is purely
// age-based; join velocity is not tracked.
func ShouldAutoBan(p *models.GuildPolicy, accountCreatedAt, now time.Time, minAge time.Duration) bool {
	if !p.RaidProtectionEnabled {
		return false
	}
	return now.Sub(accountCreatedAt) < minAge
}
