// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
)

// engine is the decision engine the moderation commands act through.
var engine *automod.Engine

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, eng *automod.Engine) {
	engine = eng

	// Create individual subcommands (each can be in its own file)
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	removeWarnCmd := createRemoveWarnCommand()
	banCmd := createBanCommand()
	unbanCmd := createUnbanCommand()
	kickCmd := createKickCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	clearCmd := createClearCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Commandes de modération",
		warnCmd,
		warningsCmd,
		removeWarnCmd,
		banCmd,
		unbanCmd,
		kickCmd,
		muteCmd,
		unmuteCmd,
		clearCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
