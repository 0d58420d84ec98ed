// Package events provides event handlers for guild events
package events

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

// onGuildCreate warms the guild's policy so the first message never pays
// the default-creation flush
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	logger.Info(fmt.Sprintf("🏠 Servidor disponible: %s (%s)", g.Name, g.ID), "Guild")

	if _, err := engine.Store().Get(g.ID); err != nil {
		logger.Error(fmt.Sprintf("No se pudo persistir la política inicial de %s: %v", g.ID, err), "Guild")
	}
}

// onGuildDelete is called when the bot leaves or loses a guild
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("🚪 Servidor no disponible: %s", g.ID), "Guild")
}
