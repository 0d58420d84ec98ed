// Package guard - /automod setlog command
package guard

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createSetLogCommand creates the /automod setlog subcommand
func createSetLogCommand() *discord.Command {
	return discord.NewCommand(
		"setlog",
		"Définit le salon des journaux de modération",
		"automod",
		setLogHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "salon",
			Description: "Salon des journaux (vide pour désactiver)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// setLogHandler handles the /automod setlog command
func setLogHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("salon")

	channelID := ""
	if channel != nil {
		channelID = channel.ID
	}

	err := engine.Store().Mutate(ctx.Interaction.GuildID, func(p *models.GuildPolicy) {
		p.LogChannelID = channelID
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando setlog: %v", err), "CMD-Automod")
	}

	if channelID == "" {
		return ctx.Reply("📋 Salon des journaux **désactivé**.")
	}
	return ctx.Reply(fmt.Sprintf("📋 Salon des journaux défini sur <#%s>.", channelID))
}
