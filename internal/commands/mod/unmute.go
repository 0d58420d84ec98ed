// Package mod - /mod unmute command
package mod

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the /mod unmute subcommand
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Rend la parole à un membre",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "membre",
			Description: "Membre à démuter",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

// unmuteHandler handles the /mod unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("membre")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer un membre.")
	}

	// A nil until clears the timeout
	err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, nil)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Impossible de démuter: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔊 **%s** peut de nouveau parler.", user.Username))
}
