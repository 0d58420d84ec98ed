package utils

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/config"
	"github.com/PancyStudios/SentinelBotGo/pkg/database"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/errors"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Affiche l'état du bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		storage := fmt.Sprintf("📄 Fichier (%s)", config.Get().PolicyFile)
		if config.Get().UsesMongo() {
			dbStatus, _ := database.Get().GetStatus()
			storage = "🍃 MongoDB: " + dbStatus
		}

		stats := engine.Snapshot()

		ctx.Reply(fmt.Sprintf(
			"📊 **État du bot**\n"+
				"• Bot: 🟢 En ligne\n"+
				"• Stockage: %s\n"+
				"• Serveurs: %d\n"+
				"• Messages analysés: %d\n"+
				"• Messages filtrés: %d\n"+
				"• Sanctions anti-spam: %d\n"+
				"• Bans anti-raid: %d",
			storage,
			ctx.Client.GuildCount(),
			stats.MessagesChecked,
			stats.Filtered,
			stats.RateLimited+stats.MentionSpam,
			stats.RaidBans,
		))
	}()
	return nil
}
