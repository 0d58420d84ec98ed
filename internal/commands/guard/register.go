// Package guard provides the /automod command group: per-guild policy
// configuration (toggles, banned words, log channel, maintenance mode).
package guard

import (
	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
)

// engine gives the commands access to the policy store.
var engine *automod.Engine

// RegisterGuardCommands registers the /automod command group
func RegisterGuardCommands(client *discord.ExtendedClient, eng *automod.Engine) {
	engine = eng

	toggleCmd := createToggleCommand()
	raidCmd := createRaidCommand()
	addWordCmd := createAddWordCommand()
	delWordCmd := createDelWordCommand()
	wordsCmd := createWordsCommand()
	setLogCmd := createSetLogCommand()
	maintenanceCmd := createMaintenanceCommand()
	statusCmd := createStatusCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"automod",
		"Configuration de la modération automatique",
		toggleCmd,
		raidCmd,
		addWordCmd,
		delWordCmd,
		wordsCmd,
		setLogCmd,
		maintenanceCmd,
		statusCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}
