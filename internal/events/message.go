// Package events provides event handlers for message events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/automod"
	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate feeds every guild message into the decision pipeline
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar bots y mensajes directos
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ts := time.Now()
	if parsed := m.Timestamp; !parsed.IsZero() {
		ts = parsed
	}

	ev := models.MessageEvent{
		GuildID:      m.GuildID,
		ChannelID:    m.ChannelID,
		MessageID:    m.ID,
		AuthorID:     m.Author.ID,
		AuthorName:   m.Author.Username,
		IsPrivileged: isPrivileged(s, m),
		Content:      m.Content,
		MentionCount: len(m.Mentions),
		Timestamp:    ts,
	}

	verdict := engine.HandleMessage(ev)
	if verdict.Outcome != automod.OutcomePassed && verdict.Outcome != automod.OutcomeSkipped {
		logger.Debug(fmt.Sprintf("💬 %s → %s (guild %s)", m.Author.Username, verdict.Outcome, m.GuildID), "Message")
	}
}

// isPrivileged reports whether the author is exempt from enforcement.
// Administrators and members allowed to moderate are never sanctioned.
func isPrivileged(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	perms, err := s.State.MessagePermissions(m.Message)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0 ||
		perms&discordgo.PermissionModerateMembers != 0
}
