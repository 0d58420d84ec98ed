// Package dev provides developer-only commands registered on the dev guild.
package dev

import (
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
)

// RegisterDevCommands registers all developer commands
func RegisterDevCommands(client *discord.ExtendedClient) {
	evalCmd := CreateEvalCommand()
	client.CommandHandler.RegisterCommand(evalCmd)
}
