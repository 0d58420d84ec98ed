// Package events wires the Discord gateway to the automod engine.
package events

import (
	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
)

// engine is the shared decision engine the handlers feed.
var engine *automod.Engine

// RegisterAll registers all gateway event handlers.
func RegisterAll(client *discord.ExtendedClient, eng *automod.Engine) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	engine = eng

	RegisterReadyEvent(client)
	RegisterGuildEvents(client)
	RegisterMemberEvents(client)
	RegisterMessageEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
