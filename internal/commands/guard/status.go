// Package guard - /automod status command
package guard

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createStatusCommand creates the /automod status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Affiche la configuration de modération du serveur",
		"automod",
		statusHandler,
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// statusHandler handles the /automod status command
func statusHandler(ctx *discord.CommandContext) error {
	p, err := engine.Store().Get(ctx.Interaction.GuildID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de charger la configuration du serveur.")
	}

	onOff := func(b bool) string {
		if b {
			return "🟢 Actif"
		}
		return "🔴 Inactif"
	}

	logChannel := "—"
	if p.LogChannelID != "" {
		logChannel = fmt.Sprintf("<#%s>", p.LogChannelID)
	}

	words := "—"
	if len(p.BannedWords) > 0 {
		words = "`" + strings.Join(p.BannedWords, "`, `") + "`"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🛡️ Configuration de la modération",
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Automod", Value: onOff(p.AutomodEnabled), Inline: true},
			{Name: "Anti-raid", Value: onOff(p.RaidProtectionEnabled), Inline: true},
			{Name: "Maintenance", Value: onOff(p.MaintenanceMode), Inline: true},
			{Name: "Salon des journaux", Value: logChannel, Inline: false},
			{Name: fmt.Sprintf("Mots interdits (%d)", len(p.BannedWords)), Value: words, Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - SentinelBot",
		},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}
