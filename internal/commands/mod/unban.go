// Package mod - /mod unban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Révoque le bannissement d'un utilisateur",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID de l'utilisateur à débannir",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// unbanHandler handles the /mod unban command
func unbanHandler(ctx *discord.CommandContext) error {
	userID := ctx.GetStringOption("id")
	if userID == "" {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer l'ID de l'utilisateur.")
	}

	err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, userID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Impossible de débannir: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔓 <@%s> a été débanni.", userID))
}
