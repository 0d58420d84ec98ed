// Package guard - banned word management commands
package guard

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createAddWordCommand creates the /automod addword subcommand
func createAddWordCommand() *discord.Command {
	return discord.NewCommand(
		"addword",
		"Ajoute un terme à la liste des mots interdits",
		"automod",
		addWordHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mot",
			Description: "Terme à interdire",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// addWordHandler handles the /automod addword command. Adding a word that
// is already listed is a no-op.
func addWordHandler(ctx *discord.CommandContext) error {
	word := strings.ToLower(strings.TrimSpace(ctx.GetStringOption("mot")))
	if word == "" {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer un terme.")
	}

	already := false
	err := engine.Store().Mutate(ctx.Interaction.GuildID, func(p *models.GuildPolicy) {
		for _, w := range p.BannedWords {
			if w == word {
				already = true
				return
			}
		}
		p.BannedWords = append(p.BannedWords, word)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando addword: %v", err), "CMD-Automod")
	}

	if already {
		return ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ « %s » est déjà dans la liste.", word))
	}
	return ctx.Reply(fmt.Sprintf("🚫 « %s » ajouté à la liste des mots interdits.", word))
}

// createDelWordCommand creates the /automod delword subcommand
func createDelWordCommand() *discord.Command {
	return discord.NewCommand(
		"delword",
		"Retire un terme de la liste des mots interdits",
		"automod",
		delWordHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "mot",
			Description:  "Terme à retirer",
			Required:     true,
			Autocomplete: true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator).
		WithAutoComplete(delWordAutoComplete)
}

// delWordHandler handles the /automod delword command. Removing a word
// that is not listed leaves the list unchanged.
func delWordHandler(ctx *discord.CommandContext) error {
	word := strings.ToLower(strings.TrimSpace(ctx.GetStringOption("mot")))
	if word == "" {
		return ctx.ReplyEphemeral("❌ Tu dois indiquer un terme.")
	}

	found := false
	err := engine.Store().Mutate(ctx.Interaction.GuildID, func(p *models.GuildPolicy) {
		for i, w := range p.BannedWords {
			if w == word {
				p.BannedWords = append(p.BannedWords[:i], p.BannedWords[i+1:]...)
				found = true
				return
			}
		}
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando delword: %v", err), "CMD-Automod")
	}

	if !found {
		return ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ « %s » n'est pas dans la liste.", word))
	}
	return ctx.Reply(fmt.Sprintf("✅ « %s » retiré de la liste des mots interdits.", word))
}

// delWordAutoComplete proposes the currently banned words
func delWordAutoComplete(ctx *discord.CommandContext) {
	p, err := engine.Store().Get(ctx.Interaction.GuildID)
	if err != nil {
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
	for i, w := range p.BannedWords {
		if i >= 25 {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  w,
			Value: w,
		})
	}

	ctx.SendAutoCompleteChoices(choices)
}

// createWordsCommand creates the /automod words subcommand
func createWordsCommand() *discord.Command {
	return discord.NewCommand(
		"words",
		"Affiche la liste des mots interdits",
		"automod",
		wordsHandler,
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// wordsHandler handles the /automod words command
func wordsHandler(ctx *discord.CommandContext) error {
	p, err := engine.Store().Get(ctx.Interaction.GuildID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de charger la configuration du serveur.")
	}

	if len(p.BannedWords) == 0 {
		return ctx.ReplyEphemeral("ℹ️ Aucun mot interdit sur ce serveur.")
	}

	return ctx.ReplyEphemeral(fmt.Sprintf(
		"🚫 **Mots interdits (%d):**\n`%s`",
		len(p.BannedWords),
		strings.Join(p.BannedWords, "`, `"),
	))
}
