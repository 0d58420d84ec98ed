// Package guard - /automod maintenance command
package guard

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createMaintenanceCommand creates the /automod maintenance subcommand
func createMaintenanceCommand() *discord.Command {
	return discord.NewCommand(
		"maintenance",
		"Active ou désactive le mode maintenance du serveur",
		"automod",
		maintenanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "actif",
			Description: "true pour activer, false pour désactiver",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison affichée aux membres",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// maintenanceHandler handles the /automod maintenance command. While
// maintenance is active, messages from non-staff members are removed.
func maintenanceHandler(ctx *discord.CommandContext) error {
	enabled := ctx.GetBoolOption("actif")
	reason := ctx.GetStringOption("raison")
	if enabled && reason == "" {
		reason = "Maintenance en cours"
	}
	if !enabled {
		reason = ""
	}

	err := engine.Store().Mutate(ctx.Interaction.GuildID, func(p *models.GuildPolicy) {
		p.MaintenanceMode = enabled
		p.MaintenanceReason = reason
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando maintenance: %v", err), "CMD-Automod")
	}

	if enabled {
		return ctx.Reply(fmt.Sprintf("🔧 Mode maintenance **activé**: %s", reason))
	}
	return ctx.Reply("✅ Mode maintenance **désactivé**.")
}
