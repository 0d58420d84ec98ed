// Package models contains the shared data structures of the bot.
package models

import "time"

// Warning representa una advertencia individual de un miembro.
// Once issued it is never edited; it can only be removed by explicit
// retraction through the warning ledger.
type Warning struct {
	ID        string    `bson:"id" json:"id"`
	Reason    string    `bson:"reason" json:"reason"`
	Moderator string    `bson:"moderator" json:"moderator"`
	IssuedAt  time.Time `bson:"issuedAt" json:"issuedAt"`
}

// GuildPolicy is the full moderation configuration of a single guild.
// Exactly one policy exists per guild; it is created lazily with
// DefaultPolicy on first access and persisted on every mutation.
type GuildPolicy struct {
	GuildID               string               `bson:"guildId" json:"guildId"`
	LogChannelID          string               `bson:"logChannelId" json:"logChannelId"`
	MaintenanceMode       bool                 `bson:"maintenanceMode" json:"maintenanceMode"`
	MaintenanceReason     string               `bson:"maintenanceReason" json:"maintenanceReason"`
	AutomodEnabled        bool                 `bson:"automodEnabled" json:"automodEnabled"`
	RaidProtectionEnabled bool                 `bson:"raidProtectionEnabled" json:"raidProtectionEnabled"`
	BannedWords           []string             `bson:"bannedWords" json:"bannedWords"`
	Warnings              map[string][]Warning `bson:"warnings" json:"warnings"`
}

// DefaultBannedWords is the banned-word list a fresh guild policy starts with.
var DefaultBannedWords = []string{"spam", "hack", "scam"}

// DefaultPolicy returns the documented default policy for a guild.
func DefaultPolicy(guildID string) *GuildPolicy {
	words := make([]string, len(DefaultBannedWords))
	copy(words, DefaultBannedWords)

	return &GuildPolicy{
		GuildID:               guildID,
		AutomodEnabled:        true,
		RaidProtectionEnabled: true,
		BannedWords:           words,
		Warnings:              make(map[string][]Warning),
	}
}

// FillDefaults patches a policy loaded from storage so that documents
// written by older versions always end up with a complete schema.
func (p *GuildPolicy) FillDefaults(guildID string) {
	if p.GuildID == "" {
		p.GuildID = guildID
	}
	if p.BannedWords == nil {
		p.BannedWords = make([]string, 0)
	}
	if p.Warnings == nil {
		p.Warnings = make(map[string][]Warning)
	}
}

// Clone returns a deep copy of the policy. The store hands out clones so
// callers can read them without holding the guild lock.
func (p *GuildPolicy) Clone() *GuildPolicy {
	cp := *p

	cp.BannedWords = make([]string, len(p.BannedWords))
	copy(cp.BannedWords, p.BannedWords)

	cp.Warnings = make(map[string][]Warning, len(p.Warnings))
	for member, list := range p.Warnings {
		entries := make([]Warning, len(list))
		copy(entries, list)
		cp.Warnings[member] = entries
	}

	return &cp
}

// HasBannedWord reports whether word is already on the list. Words are
// stored lowercased, so the comparison is exact.
func (p *GuildPolicy) HasBannedWord(word string) bool {
	for _, w := range p.BannedWords {
		if w == word {
			return true
		}
	}
	return false
}
