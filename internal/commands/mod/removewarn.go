package mod

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createRemoveWarnCommand creates the /mod removewarn subcommand
func createRemoveWarnCommand() *discord.Command {
	return discord.NewCommand(
		"removewarn",
		"Retire un avertissement précis d'un membre",
		"mod",
		removeWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "membre",
			Description: "Membre dont retirer l'avertissement",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "numero",
			Description:  "Numéro de l'avertissement à retirer (1 = le plus ancien)",
			Required:     true,
			Autocomplete: true,
			MinValue:     func() *float64 { v := 1.0; return &v }(),
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).WithAutoComplete(removeWarnAutoComplete)
}

// removeWarnHandler handles the /mod removewarn command
func removeWarnHandler(ctx *discord.CommandContext) error {
	targetUser := ctx.GetUserOption("membre")
	if targetUser == nil {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer un membre valide.")
	}

	index := int(ctx.GetIntOption("numero"))

	removed, err := engine.RetractWarning(ctx.Interaction.GuildID, targetUser.ID, index)
	if err != nil {
		if errors.IsNotFound(err) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ **%s** n'a pas d'avertissement n°%d.", targetUser.Username, index))
		}
		// El retiro quedó en memoria pero no se pudo persistir
		logger.Error(fmt.Sprintf("Error guardando removewarn: %v", err), "CMD-RemoveWarn")
	}

	return ctx.Reply(fmt.Sprintf(
		"✅ Avertissement n°%d de **%s** retiré.\n**Raison d'origine:** %s",
		index, targetUser.Username, removed.Reason,
	))
}

// removeWarnAutoComplete handles autocomplete for the removewarn command
func removeWarnAutoComplete(ctx *discord.CommandContext) {
	go func() {
		defer errors.RecoverMiddleware()()

		targetUser := ctx.GetUserOption("membre")
		if targetUser == nil {
			return
		}

		warns := engine.Store().Warnings(ctx.Interaction.GuildID, targetUser.ID)
		if len(warns) == 0 {
			return
		}

		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
		for i, warn := range warns {
			if i >= 25 {
				break
			}
			name := fmt.Sprintf("#%d - %s", i+1, warn.Reason)
			if len(name) > 100 {
				name = name[:97] + "..."
			}
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  name,
				Value: i + 1,
			})
		}

		ctx.SendAutoCompleteChoices(choices)
	}()
}
