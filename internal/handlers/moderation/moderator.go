package moderation

import (
	"context"
	"time"

	"github.com/iamwavecut/tool"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/modbot/internal/bot"
	"github.com/iamwavecut/modbot/internal/db"
	apperrors "github.com/iamwavecut/modbot/internal/errors"
	"github.com/iamwavecut/modbot/internal/i18n"
	"github.com/iamwavecut/modbot/internal/observability"
)

// Moderator executes manual moderation commands against the platform and
// records the outcome in the audit trail. Audit and notice failures never
// undo a platform action that already succeeded; they are logged and the
// invocation still counts.
type Moderator struct {
	platform  Platform
	store     Store
	auth      Authorizer
	noticeTTL time.Duration
}

func NewModerator(platform Platform, store Store, auth Authorizer, noticeTTL time.Duration) *Moderator {
	RegisterNoticeCleanup()
	return &Moderator{
		platform:  platform,
		store:     store,
		auth:      auth,
		noticeTTL: noticeTTL,
	}
}

// Execute dispatches a parsed mute/ban/kick command.
func (m *Moderator) Execute(ctx context.Context, cmd Command, req Request) error {
	switch cmd.Kind {
	case KindMute:
		return m.Mute(ctx, req, cmd.Mute)
	case KindBan:
		return m.Ban(ctx, req, cmd.Ban)
	case KindKick:
		return m.Kick(ctx, req, cmd.Kick)
	}
	return errors.Errorf("unknown command kind %d", cmd.Kind)
}

// Mute restricts the target from sending messages, until the parsed
// duration when Timer is set or indefinitely otherwise. Inverted it lifts
// the restriction. Mute is deliberately open to any chat member.
func (m *Moderator) Mute(ctx context.Context, req Request, opts MuteOptions) error {
	reason, untilUnix, err := resolveCommandInputs(req, opts.Invert, opts.Timer)
	if err != nil {
		return err
	}
	if req.Target == nil {
		return apperrors.ErrUserNotReplied
	}

	if opts.Invert {
		if err := m.platform.UnrestrictMember(ctx, req.ChatID, req.Target.ID); err != nil {
			return err
		}
		m.notify(ctx, req, "User {{ .name }} can talk again! 🥳", nil)
		m.audit(ctx, req, db.ActionUnmute, "")
		observability.RecordModerationAction(db.ActionUnmute)
		return nil
	}

	if err := m.platform.RestrictMember(ctx, req.ChatID, req.Target.ID, untilUnix); err != nil {
		return err
	}
	m.deleteTargetMessage(ctx, req, opts.Delete)
	if !opts.Silent {
		m.notify(ctx, req, "User {{ .name }} is muted 🤫", nil)
	}
	m.audit(ctx, req, db.ActionMute, reason)
	observability.RecordModerationAction(db.ActionMute)
	return nil
}

// Ban excludes the target, until the parsed duration when Timer is set or
// permanently otherwise. Delete additionally asks the platform to revoke
// the target's recent messages. Inverted it re-admits a banned user.
func (m *Moderator) Ban(ctx context.Context, req Request, opts BanOptions) error {
	if err := m.requireAdmin(ctx, req); err != nil {
		return err
	}
	reason, untilUnix, err := resolveCommandInputs(req, opts.Invert, opts.Timer)
	if err != nil {
		return err
	}
	if req.Target == nil {
		return apperrors.ErrUserNotReplied
	}

	if opts.Invert {
		if err := m.platform.UnbanMember(ctx, req.ChatID, req.Target.ID); err != nil {
			return err
		}
		m.notify(ctx, req, "User {{ .name }} is unbanned! 🥳", nil)
		m.audit(ctx, req, db.ActionUnban, "")
		observability.RecordModerationAction(db.ActionUnban)
		return nil
	}

	if err := m.platform.BanMember(ctx, req.ChatID, req.Target.ID, untilUnix, opts.Delete); err != nil {
		return err
	}
	m.deleteTargetMessage(ctx, req, opts.Delete)
	if !opts.Silent {
		m.notify(ctx, req, "User {{ .name }} is banned!", nil)
	}
	m.audit(ctx, req, db.ActionBan, reason)
	observability.RecordModerationAction(db.ActionBan)
	return nil
}

// Kick is a compound exclude-then-readmit with no lasting restriction.
// It takes no mandatory arguments; a trailing word is kept as the audit
// reason.
func (m *Moderator) Kick(ctx context.Context, req Request, opts KickOptions) error {
	if err := m.requireAdmin(ctx, req); err != nil {
		return err
	}
	if req.Target == nil {
		return apperrors.ErrUserNotReplied
	}
	var reason string
	if len(req.Args) > 0 {
		reason = req.Args[0]
	}

	if err := m.platform.BanMember(ctx, req.ChatID, req.Target.ID, 0, opts.Delete); err != nil {
		return err
	}
	if err := m.platform.UnbanMember(ctx, req.ChatID, req.Target.ID); err != nil {
		return err
	}
	if !opts.Silent {
		m.notify(ctx, req, "User {{ .name }} was kicked.", nil)
	}
	m.audit(ctx, req, db.ActionKick, reason)
	observability.RecordModerationAction(db.ActionKick)
	return nil
}

// Strike reads or resets the target's strike counter.
func (m *Moderator) Strike(ctx context.Context, req Request, opts StrikeOptions) error {
	if err := m.requireAdmin(ctx, req); err != nil {
		return err
	}
	if req.Target == nil {
		return apperrors.ErrUserNotReplied
	}

	switch opts.Op {
	case StrikeGet:
		count, err := m.store.GetStrikes(ctx, req.ChatID, req.Target.ID)
		if err != nil {
			return errors.WithMessage(err, "get strikes")
		}
		m.notify(ctx, req, "User {{ .name }} has {{ .count }} strikes", map[string]any{"count": count})
		return nil
	case StrikeReset:
		if err := m.store.ResetStrikes(ctx, req.ChatID, req.Target.ID); err != nil {
			return errors.WithMessage(err, "reset strikes")
		}
		m.notify(ctx, req, "Strikes of user {{ .name }} were reset", nil)
		return nil
	}
	return errors.Errorf("unknown strike op %q", opts.Op)
}

func (m *Moderator) requireAdmin(ctx context.Context, req Request) error {
	if req.Actor == nil {
		return apperrors.ErrNotAuthorized
	}
	admin, err := m.auth.IsAdmin(ctx, req.ChatID, req.Actor.ID)
	if err != nil {
		return errors.WithMessage(err, "check admin")
	}
	if !admin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

// resolveCommandInputs validates the argument protocol shared by the
// punitive commands: a mandatory one-word reason, plus a duration token
// when Timer is set. Inverted commands take no arguments at all.
func resolveCommandInputs(req Request, invert, timer bool) (reason string, untilUnix int64, err error) {
	if invert {
		return "", 0, nil
	}
	if len(req.Args) == 0 {
		return "", 0, apperrors.ErrMissingReason
	}
	reason = req.Args[0]
	if timer {
		if len(req.Args) < 2 {
			return "", 0, apperrors.ErrMissingDuration
		}
		seconds, err := ParseDuration(req.Args[1])
		if err != nil {
			return "", 0, err
		}
		untilUnix = time.Now().Unix() + seconds
	}
	return reason, untilUnix, nil
}

func (m *Moderator) deleteTargetMessage(ctx context.Context, req Request, enabled bool) {
	if !enabled || req.TargetMessageID == 0 {
		return
	}
	if err := m.platform.DeleteMessage(ctx, req.ChatID, req.TargetMessageID); err != nil {
		m.getLogEntry().WithError(err).Warn("cant delete target message")
	}
}

func (m *Moderator) notify(ctx context.Context, req Request, key string, extra map[string]any) {
	data := map[string]any{"name": bot.GetUN(req.Target)}
	for k, v := range extra {
		data[k] = v
	}
	text := tool.ExecTemplate(i18n.Get(key, req.Lang), data)
	messageID, err := m.platform.SendMessage(ctx, req.ChatID, text)
	if err != nil {
		m.getLogEntry().WithError(err).Warn("cant send notice")
		return
	}
	if m.noticeTTL > 0 {
		scheduleNoticeCleanup(m.platform, req.ChatID, messageID, time.Now().Add(m.noticeTTL))
	}
}

func (m *Moderator) audit(ctx context.Context, req Request, action, reason string) {
	record := &db.AuditRecord{
		ChatID:      req.ChatID,
		UserID:      req.Target.ID,
		Action:      action,
		MessageText: req.TargetText,
		Reason:      reason,
	}
	if err := m.store.AddAuditRecord(ctx, record); err != nil {
		m.getLogEntry().WithError(err).Warn("cant write audit record")
	}
}

func (m *Moderator) getLogEntry() *log.Entry {
	return log.WithField("context", "moderation")
}
