// Package events provides the ready event handler
package events

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
}

// onReady is called when the gateway session is established
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ %s conectado (%d servidores)", r.User.Username, len(r.Guilds)), "Ready")

	err := s.UpdateGameStatus(0, "vigilando el servidor 🛡️")
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudo establecer el estado: %v", err), "Ready")
	}
}
