package automod

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/config"
	moderrors "github.com/PancyStudios/SentinelBotGo/pkg/errors"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"github.com/PancyStudios/SentinelBotGo/pkg/policy"
)

// Actions is the outbound surface of the engine. The discordgo
// implementation lives in internal/platform; tests use a recorder.
// Implementations report failures; they never panic the pipeline.
type Actions interface {
	DeleteMessage(guildID, channelID, messageID string) error
	NotifyUser(userID, content string) error
	ChannelNotice(channelID, content string) error
	Timeout(guildID, userID string, until time.Time, reason string) error
	Ban(guildID, userID, reason string) error
	Unban(guildID, userID string) error
}

// AuditSink receives one record per engine decision or sanction. Sink
// failures never affect the pipeline.
type AuditSink interface {
	Publish(event string, fields map[string]interface{})
}

// Outcome is the terminal state of a message pipeline run.
type Outcome string

const (
	// OutcomePassed: every check cleared, message untouched.
	OutcomePassed Outcome = "passed"
	// OutcomeSuppressed: deleted by the maintenance gate.
	OutcomeSuppressed Outcome = "suppressed"
	// OutcomeSkipped: automod disabled or author privileged.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFiltered: deleted by the content filter.
	OutcomeFiltered Outcome = "filtered"
	// OutcomeSanctioned: rate or mention check sanctioned the author.
	OutcomeSanctioned Outcome = "sanctioned"
)

// Verdict is the result of running one event through the pipeline.
type Verdict struct {
	Outcome         Outcome
	MatchedWord     string
	RateCount       int
	RateExceeded    bool
	MentionExceeded bool
	AutoBanned      bool
	Failures        []error
}

// Stats are the engine's running decision counters.
type Stats struct {
	MessagesChecked int64 `json:"messagesChecked"`
	Suppressed      int64 `json:"suppressed"`
	Filtered        int64 `json:"filtered"`
	RateLimited     int64 `json:"rateLimited"`
	MentionSpam     int64 `json:"mentionSpam"`
	JoinsChecked    int64 `json:"joinsChecked"`
	RaidBans        int64 `json:"raidBans"`
	WarningsIssued  int64 `json:"warningsIssued"`
	AutoBans        int64 `json:"autoBans"`
}

// Engine is the decision orchestrator. One instance serves every guild;
// all shared state lives in the policy store and the rate tracker, both
// safe for concurrent use.
type Engine struct {
	store   *policy.Store
	rates   *RateTracker
	cfg     config.AutomodConfig
	actions Actions
	audit   AuditSink

	stats Stats
}

// NewEngine wires the orchestrator.
func NewEngine(store *policy.Store, cfg config.AutomodConfig, actions Actions, audit AuditSink) *Engine {
	return &Engine{
		store:   store,
		rates:   NewRateTracker(cfg.MaxMessages, cfg.RateWindow),
		cfg:     cfg,
		actions: actions,
		audit:   audit,
	}
}

// Store returns the policy store the engine decides against.
func (e *Engine) Store() *policy.Store {
	return e.store
}

// Rates returns the engine's rate tracker (for the sweep scheduler).
func (e *Engine) Rates() *RateTracker {
	return e.rates
}

// Snapshot returns a copy of the running decision counters.
func (e *Engine) Snapshot() Stats {
	return Stats{
		MessagesChecked: atomic.LoadInt64(&e.stats.MessagesChecked),
		Suppressed:      atomic.LoadInt64(&e.stats.Suppressed),
		Filtered:        atomic.LoadInt64(&e.stats.Filtered),
		RateLimited:     atomic.LoadInt64(&e.stats.RateLimited),
		MentionSpam:     atomic.LoadInt64(&e.stats.MentionSpam),
		JoinsChecked:    atomic.LoadInt64(&e.stats.JoinsChecked),
		RaidBans:        atomic.LoadInt64(&e.stats.RaidBans),
		WarningsIssued:  atomic.LoadInt64(&e.stats.WarningsIssued),
		AutoBans:        atomic.LoadInt64(&e.stats.AutoBans),
	}
}

// HandleMessage runs one message through the pipeline. States run in
// strict order; maintenance, disabled-automod and content-filter are
// terminal, the rate and mention checks sanction but let the evaluation
// continue.
func (e *Engine) HandleMessage(ev models.MessageEvent) *Verdict {
	atomic.AddInt64(&e.stats.MessagesChecked, 1)
	v := &Verdict{Outcome: OutcomePassed}

	p, err := e.store.Get(ev.GuildID)
	if err != nil {
		// Default policy applied but not yet durable; decide anyway.
		e.reportPersistence(ev.GuildID, err)
	}

	// 1. Maintenance gate (outermost).
	if IsSuppressed(p, ev.IsPrivileged) {
		atomic.AddInt64(&e.stats.Suppressed, 1)
		v.Outcome = OutcomeSuppressed
		e.try(v, "delete", e.actions.DeleteMessage(ev.GuildID, ev.ChannelID, ev.MessageID))
		e.try(v, "notify", e.actions.NotifyUser(ev.AuthorID, fmt.Sprintf("🔧 Serveur en maintenance: %s", p.MaintenanceReason)))
		e.publish("message.suppressed", ev.GuildID, map[string]interface{}{
			"authorId": ev.AuthorID,
			"reason":   p.MaintenanceReason,
		})
		return v
	}

	// 2. Automod disabled or privileged author: pass through untouched.
	if !p.AutomodEnabled || ev.IsPrivileged {
		v.Outcome = OutcomeSkipped
		return v
	}

	// 3. Content filter. A match is terminal; the rate and mention checks
	// are skipped for this message.
	if word, ok := MatchBannedWord(ev.Content, p.BannedWords); ok {
		atomic.AddInt64(&e.stats.Filtered, 1)
		v.Outcome = OutcomeFiltered
		v.MatchedWord = word
		e.try(v, "delete", e.actions.DeleteMessage(ev.GuildID, ev.ChannelID, ev.MessageID))
		e.try(v, "notify", e.actions.NotifyUser(ev.AuthorID, fmt.Sprintf("🚫 Ton message a été supprimé: le terme « %s » est interdit sur ce serveur.", word)))
		e.logToGuild(v, p, fmt.Sprintf("🧹 Message de <@%s> supprimé (terme interdit: %s)", ev.AuthorID, word))
		e.publish("message.filtered", ev.GuildID, map[string]interface{}{
			"authorId": ev.AuthorID,
			"word":     word,
		})
		return v
	}

	// 4. Rate check (non-terminal).
	count, exceeded := e.rates.RecordAndCheck(ev.GuildID, ev.AuthorID, ev.Timestamp)
	v.RateCount = count
	if exceeded {
		atomic.AddInt64(&e.stats.RateLimited, 1)
		v.Outcome = OutcomeSanctioned
		v.RateExceeded = true
		until := ev.Timestamp.Add(e.cfg.RateTimeout)
		e.try(v, "timeout", e.actions.Timeout(ev.GuildID, ev.AuthorID, until, "Spam: limite de messages dépassée"))
		e.try(v, "notice", e.actions.ChannelNotice(ev.ChannelID, fmt.Sprintf("🚨 <@%s> a été suspendu %d minutes pour spam.", ev.AuthorID, int(e.cfg.RateTimeout.Minutes()))))
		e.logToGuild(v, p, fmt.Sprintf("🚨 <@%s> suspendu pour spam: %d messages en %s", ev.AuthorID, count, e.cfg.RateWindow))
		e.publish("message.ratelimited", ev.GuildID, map[string]interface{}{
			"authorId": ev.AuthorID,
			"count":    count,
		})
	}

	// 5. Mention check, independent of the rate-window outcome.
	if ev.MentionCount > e.cfg.MaxMentions {
		atomic.AddInt64(&e.stats.MentionSpam, 1)
		v.Outcome = OutcomeSanctioned
		v.MentionExceeded = true
		until := ev.Timestamp.Add(e.cfg.MentionTimeout)
		e.try(v, "delete", e.actions.DeleteMessage(ev.GuildID, ev.ChannelID, ev.MessageID))
		e.try(v, "timeout", e.actions.Timeout(ev.GuildID, ev.AuthorID, until, "Spam de mentions"))
		e.logToGuild(v, p, fmt.Sprintf("📣 <@%s> suspendu pour spam de mentions (%d mentions)", ev.AuthorID, ev.MentionCount))
		e.publish("message.mentionspam", ev.GuildID, map[string]interface{}{
			"authorId": ev.AuthorID,
			"mentions": ev.MentionCount,
		})
	}

	return v
}

// HandleJoin runs the raid guard for one member join.
func (e *Engine) HandleJoin(ev models.JoinEvent) *Verdict {
	atomic.AddInt64(&e.stats.JoinsChecked, 1)
	v := &Verdict{Outcome: OutcomePassed}

	p, err := e.store.Get(ev.GuildID)
	if err != nil {
		e.reportPersistence(ev.GuildID, err)
	}

	if !ShouldAutoBan(p, ev.AccountCreatedAt, ev.Now, e.cfg.MinAccountAge) {
		return v
	}

	atomic.AddInt64(&e.stats.RaidBans, 1)
	v.Outcome = OutcomeSanctioned
	v.AutoBanned = true

	days := int(e.cfg.MinAccountAge.Hours() / 24)
	reason := fmt.Sprintf("Protection anti-raid: compte créé il y a moins de %d jours", days)
	e.try(v, "ban", e.actions.Ban(ev.GuildID, ev.MemberID, reason))
	e.logToGuild(v, p, fmt.Sprintf("🛡️ <@%s> banni par la protection anti-raid (compte trop récent)", ev.MemberID))
	e.publish("member.raidban", ev.GuildID, map[string]interface{}{
		"memberId":  ev.MemberID,
		"createdAt": ev.AccountCreatedAt,
	})
	return v
}

// HandleLeave drops the member's transient state.
func (e *Engine) HandleLeave(ev models.LeaveEvent) {
	e.rates.Forget(ev.GuildID, ev.MemberID)
}

// Warn records a warning and escalates to a permanent ban exactly when
// the count crosses the threshold. Counts only ever grow by one per call,
// so the crossing is unique: later warnings never re-trigger the ban and
// a retraction never re-arms it retroactively.
func (e *Engine) Warn(guildID, memberID, reason, moderator string) (int, bool, error) {
	count, _, err := e.store.AddWarning(guildID, memberID, reason, moderator)
	if err != nil {
		e.reportPersistence(guildID, err)
	}
	atomic.AddInt64(&e.stats.WarningsIssued, 1)

	e.publish("member.warned", guildID, map[string]interface{}{
		"memberId":  memberID,
		"reason":    reason,
		"moderator": moderator,
		"count":     count,
	})

	if count != e.cfg.WarnThreshold {
		return count, false, err
	}

	atomic.AddInt64(&e.stats.AutoBans, 1)
	banReason := fmt.Sprintf("%d avertissements atteints", e.cfg.WarnThreshold)

	v := &Verdict{}
	e.try(v, "ban", e.actions.Ban(guildID, memberID, banReason))

	if p, getErr := e.store.Get(guildID); getErr == nil {
		e.logToGuild(v, p, fmt.Sprintf("🔨 <@%s> banni automatiquement: %s", memberID, banReason))
	}
	e.publish("member.autobanned", guildID, map[string]interface{}{
		"memberId": memberID,
		"reason":   banReason,
	})

	return count, true, err
}

// RetractWarning removes the warning at the 1-based index. The ban
// history is left as is; retraction never undoes an escalation.
func (e *Engine) RetractWarning(guildID, memberID string, index int) (models.Warning, error) {
	removed, err := e.store.RemoveWarning(guildID, memberID, index)
	if err != nil {
		if moderrors.IsPersistence(err) {
			e.reportPersistence(guildID, err)
		}
		return removed, err
	}

	e.publish("member.warning_retracted", guildID, map[string]interface{}{
		"memberId": memberID,
		"index":    index,
		"reason":   removed.Reason,
	})
	return removed, nil
}

// try classifies and records a platform-action failure without aborting
// the rest of the pipeline.
func (e *Engine) try(v *Verdict, action string, err error) {
	if err == nil {
		return
	}
	wrapped := moderrors.PlatformAction(action, err)
	v.Failures = append(v.Failures, wrapped)
	logger.Error(wrapped.Error(), "Automod")
	e.publish("action.failed", "", map[string]interface{}{
		"action": action,
		"error":  err.Error(),
	})
}

// logToGuild posts a notice to the guild's configured log channel.
func (e *Engine) logToGuild(v *Verdict, p *models.GuildPolicy, content string) {
	if p.LogChannelID == "" {
		return
	}
	e.try(v, "lognotice", e.actions.ChannelNotice(p.LogChannelID, content))
}

func (e *Engine) reportPersistence(guildID string, err error) {
	logger.Error(fmt.Sprintf("Persistencia de políticas falló (guild %s): %v", guildID, err), "Automod")
	e.publish("persistence.failed", guildID, map[string]interface{}{
		"error": err.Error(),
	})
}

func (e *Engine) publish(event, guildID string, fields map[string]interface{}) {
	if e.audit == nil {
		return
	}
	if guildID != "" {
		fields["guildId"] = guildID
	}
	e.audit.Publish(event, fields)
}
