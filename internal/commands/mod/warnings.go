package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warns subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"Liste des avertissements d'un membre",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "membre",
			Description: "[STAFF] Membre à consulter (optionnel)",
			Required:    false,
		},
	)
}

func warningsHandler(ctx *discord.CommandContext) error {
	// Goroutine para no bloquear el hilo principal
	go func() {
		defer errors.RecoverMiddleware()()

		targetUser := ctx.GetUserOption("membre")
		isSelf := false

		if targetUser == nil {
			targetUser = ctx.User()
			isSelf = true
		}

		// Ver advertencias ajenas requiere ser moderador
		if !isSelf && !ctx.HasPermissions(discordgo.PermissionModerateMembers) {
			ctx.ReplyEphemeral("❌ Tu n'as pas la permission de consulter les avertissements d'un autre membre.")
			return
		}

		warns := engine.Store().Warnings(ctx.Interaction.GuildID, targetUser.ID)

		if len(warns) == 0 {
			embedClear := &discordgo.MessageEmbed{
				Title:       fmt.Sprintf("🔖 - Avertissements de %s", targetUser.Username),
				Color:       0x00FF00, // Green
				Description: fmt.Sprintf("Aucun avertissement pour ce membre sur ce serveur.\n\n> 💫 - **Nombre d'avertissements:** 0\n> 🕒 - **Date de consultation:** <t:%d>", time.Now().Unix()),
				Footer: &discordgo.MessageEmbedFooter{
					Text: "💫 - SentinelBot",
				},
			}
			ctx.ReplyEphemeralEmbed(embedClear)
			return
		}

		var description string
		for i, warn := range warns {
			modName := "Caché"
			if ctx.HasPermissions(discordgo.PermissionModerateMembers) {
				modName = fmt.Sprintf("<@%s>", warn.Moderator)
			}
			description += fmt.Sprintf("> **#%d** — %s\n> **Modérateur:** %s\n> **Date:** <t:%d>\n\n",
				i+1, warn.Reason, modName, warn.IssuedAt.Unix())
		}
		description += fmt.Sprintf("> 💫 - **Nombre d'avertissements:** %d\n> 🕒 - **Date de consultation:** <t:%d>", len(warns), time.Now().Unix())

		embedList := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Avertissements de %s (%s)", targetUser.Username, targetUser.ID),
			Color:       0xFFA500, // Orange
			Description: description,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "💫 - SentinelBot",
			},
		}

		ctx.ReplyEphemeralEmbed(embedList)
	}()

	return nil
}
