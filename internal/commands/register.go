// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod, guard, dev)
package commands

import (
	"github.com/PancyStudios/SentinelBotGo/internal/commands/dev"
	"github.com/PancyStudios/SentinelBotGo/internal/commands/guard"
	"github.com/PancyStudios/SentinelBotGo/internal/commands/mod"
	"github.com/PancyStudios/SentinelBotGo/internal/commands/utils"
	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, eng *automod.Engine) {
	// Utility commands (/utils ping, /utils status, /utils help)
	utils.RegisterUtilCommands(client, eng)

	// Moderation commands (/mod warn, /mod ban, /mod mute, ...)
	mod.RegisterModCommands(client, eng)

	// Automod configuration (/automod toggle, /automod addword, ...)
	guard.RegisterGuardCommands(client, eng)

	// Developer commands (dev guild only)
	dev.RegisterDevCommands(client)
}
