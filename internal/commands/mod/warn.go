// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Avertit un membre",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "membre",
			Description: "Membre à avertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison de l'avertissement",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("membre")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer un membre.")
	}

	reason := ctx.GetStringOption("raison")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer une raison.")
	}

	count, banned, err := engine.Warn(ctx.Interaction.GuildID, user.ID, reason, ctx.User().ID)
	if err != nil {
		// La advertencia ya quedó registrada en memoria; solo avisamos
		logger.Error(fmt.Sprintf("Error guardando advertencia: %v", err), "CMD-Warn")
	}

	if banned {
		return ctx.Reply(fmt.Sprintf(
			"⚠️ **%s** a reçu son avertissement n°%d.\n**Raison:** %s\n\n🔨 Seuil atteint: le membre a été **banni automatiquement**.",
			user.Username, count, reason,
		))
	}

	return ctx.Reply(fmt.Sprintf(
		"⚠️ **%s** a été averti (%d avertissement(s)).\n**Raison:** %s\n**Modérateur:** %s",
		user.Username, count, reason, ctx.User().Username,
	))
}
