// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Bannit un membre du serveur",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "membre",
			Description: "Membre à bannir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison du bannissement",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "jours",
			Description: "Jours de messages à supprimer (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("membre")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer un membre.")
	}

	reason := ctx.GetStringOption("raison")
	if reason == "" {
		reason = "Aucune raison fournie"
	}

	days := int(ctx.GetIntOption("jours"))

	// Perform the ban
	err := ctx.Session.GuildBanCreateWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
		days,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Impossible de bannir: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔨 **%s** a été banni.\n**Raison:** %s", user.Username, reason))
}
