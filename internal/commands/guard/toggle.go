// Package guard - /automod toggle and /automod raid commands
package guard

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createToggleCommand creates the /automod toggle subcommand
func createToggleCommand() *discord.Command {
	return discord.NewCommand(
		"toggle",
		"Active ou désactive la modération automatique",
		"automod",
		toggleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "actif",
			Description: "true pour activer, false pour désactiver",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// toggleHandler handles the /automod toggle command
func toggleHandler(ctx *discord.CommandContext) error {
	enabled := ctx.GetBoolOption("actif")

	err := engine.Store().Mutate(ctx.Interaction.GuildID, func(p *models.GuildPolicy) {
		p.AutomodEnabled = enabled
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando toggle automod: %v", err), "CMD-Automod")
	}

	if enabled {
		return ctx.Reply("🛡️ Modération automatique **activée**.")
	}
	return ctx.Reply("💤 Modération automatique **désactivée**.")
}

// createRaidCommand creates the /automod raid subcommand
func createRaidCommand() *discord.Command {
	return discord.NewCommand(
		"raid",
		"Active ou désactive la protection anti-raid",
		"automod",
		raidHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "actif",
			Description: "true pour activer, false pour désactiver",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// raidHandler handles the /automod raid command
func raidHandler(ctx *discord.CommandContext) error {
	enabled := ctx.GetBoolOption("actif")

	err := engine.Store().Mutate(ctx.Interaction.GuildID, func(p *models.GuildPolicy) {
		p.RaidProtectionEnabled = enabled
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando toggle raid: %v", err), "CMD-Automod")
	}

	if enabled {
		return ctx.Reply("🛡️ Protection anti-raid **activée**.")
	}
	return ctx.Reply("💤 Protection anti-raid **désactivée**.")
}
