// Package utils provides utility commands organized as subcommands under /utils
package utils

import (
	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
)

// engine is used by /utils status for the decision counters.
var engine *automod.Engine

// RegisterUtilCommands registers all utility commands as /utils subcommands
func RegisterUtilCommands(client *discord.ExtendedClient, eng *automod.Engine) {
	engine = eng

	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	helpCmd := createHelpCommand()

	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Commandes utilitaires",
		pingCmd,
		statusCmd,
		helpCmd,
	)

	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
