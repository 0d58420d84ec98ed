package models

import "time"

// MessageEvent is an inbound message as seen by the automod engine.
// It carries only what the decision pipeline needs; the gateway handler
// translates discordgo events into this shape.
type MessageEvent struct {
	GuildID      string
	ChannelID    string
	MessageID    string
	AuthorID     string
	AuthorName   string
	IsPrivileged bool
	Content      string
	MentionCount int
	Timestamp    time.Time
}

// JoinEvent is an inbound member-join as seen by the raid guard.
type JoinEvent struct {
	GuildID          string
	MemberID         string
	MemberName       string
	AccountCreatedAt time.Time
	Now              time.Time
}

// LeaveEvent is an inbound member-leave. The engine only uses it to drop
// the member's transient rate window.
type LeaveEvent struct {
	GuildID  string
	MemberID string
}
