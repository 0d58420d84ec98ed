// Package mod - /mod clear command
package mod

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createClearCommand creates the /mod clear subcommand
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Supprime les derniers messages du salon",
		"mod",
		clearHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "nombre",
			Description: "Nombre de messages à supprimer (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// clearHandler handles the /mod clear command
func clearHandler(ctx *discord.CommandContext) error {
	count := int(ctx.GetIntOption("nombre"))
	if count < 1 || count > 100 {
		return ctx.ReplyEphemeral("❌ Le nombre doit être entre 1 et 100.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		ctx.Defer()

		msgs, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, count, "", "", "")
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Impossible de lire les messages: %v", err))
			return
		}

		ids := make([]string, 0, len(msgs))
		for _, m := range msgs {
			ids = append(ids, m.ID)
		}

		if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
			logger.Error(fmt.Sprintf("Error en bulk delete: %v", err), "CMD-Clear")
			ctx.EditReply(fmt.Sprintf("❌ Impossible de supprimer les messages: %v", err))
			return
		}

		ctx.EditReply(fmt.Sprintf("🧹 %d message(s) supprimé(s).", len(ids)))
	}()

	return nil
}
