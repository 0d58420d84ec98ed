// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/discord"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd runs the raid guard for every join. The account
// creation time comes from the snowflake id, so no extra API call is
// needed.
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s", m.User.Username, m.GuildID), "Member")

	createdAt, err := discordgo.SnowflakeTimestamp(m.User.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("Snowflake ilegible para %s: %v", m.User.ID, err), "Member")
		return
	}

	now := m.JoinedAt
	if now.IsZero() {
		now = time.Now()
	}

	verdict := engine.HandleJoin(models.JoinEvent{
		GuildID:          m.GuildID,
		MemberID:         m.User.ID,
		MemberName:       m.User.Username,
		AccountCreatedAt: createdAt,
		Now:              now,
	})

	if verdict.AutoBanned {
		logger.Warn(fmt.Sprintf("🛡️ %s baneado por protección anti-raid en %s", m.User.Username, m.GuildID), "Member")
	}
}

// onGuildMemberRemove drops the member's transient rate window
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s salió del servidor %s", m.User.Username, m.GuildID), "Member")

	engine.HandleLeave(models.LeaveEvent{
		GuildID:  m.GuildID,
		MemberID: m.User.ID,
	})
}
