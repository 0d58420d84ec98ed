package automod

import "github.com/PancyStudios/SentinelBotGo/pkg/models"

// IsSuppressed reports whether a message must be suppressed by the
// maintenance gate: maintenance mode on and the author not privileged.
// The gate is the outermost check; while it suppresses, the rest of the
// pipeline never runs.
func IsSuppressed(p *models.GuildPolicy, actorIsPrivileged bool) bool {
	return p.MaintenanceMode && !actorIsPrivileged
}
