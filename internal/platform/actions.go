// Package platform implements the engine's outbound actions over the
// Discord API. Every method returns the raw discordgo error; the engine
// classifies and reports it.
package platform

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// DiscordActions executes moderation actions through a discordgo session.
type DiscordActions struct {
	session *discordgo.Session
}

// NewDiscordActions creates the adapter.
func NewDiscordActions(session *discordgo.Session) *DiscordActions {
	return &DiscordActions{session: session}
}

// DeleteMessage removes a message from its channel.
func (a *DiscordActions) DeleteMessage(guildID, channelID, messageID string) error {
	return a.session.ChannelMessageDelete(channelID, messageID)
}

// NotifyUser sends a private message to a user. Users with closed DMs
// produce an error the engine reports and moves past.
func (a *DiscordActions) NotifyUser(userID, content string) error {
	channel, err := a.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = a.session.ChannelMessageSend(channel.ID, content)
	return err
}

// ChannelNotice posts a message to a guild channel.
func (a *DiscordActions) ChannelNotice(channelID, content string) error {
	_, err := a.session.ChannelMessageSend(channelID, content)
	return err
}

// Timeout suspends a member's communication until the given time.
func (a *DiscordActions) Timeout(guildID, userID string, until time.Time, reason string) error {
	return a.session.GuildMemberTimeout(guildID, userID, &until, discordgo.WithAuditLogReason(reason))
}

// Ban permanently bans a member.
func (a *DiscordActions) Ban(guildID, userID, reason string) error {
	return a.session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

// Unban lifts a ban.
func (a *DiscordActions) Unban(guildID, userID string) error {
	return a.session.GuildBanDelete(guildID, userID)
}
