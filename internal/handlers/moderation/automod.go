package moderation

import (
	"context"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamwavecut/tool"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/iamwavecut/modbot/internal/adapters"
	"github.com/iamwavecut/modbot/internal/db"
	"github.com/iamwavecut/modbot/internal/i18n"
	"github.com/iamwavecut/modbot/internal/observability"
)

// KVKeyLastClassifiedAt tracks when the pipeline last ran a
// classification; read back at startup as an operational breadcrumb.
const KVKeyLastClassifiedAt = "automod_last_classified_at"

// automodReasonPrefix marks audit entries produced by the pipeline so a
// reviewer can tell them from manually issued commands.
const automodReasonPrefix = "Automated moderation (LLM) -> "

// Automod turns a content-classification verdict into an escalating
// punishment. Every unsafe message increments the sender's per-chat
// strike counter; below the threshold the sender is muted for the
// configured window, at the threshold they are banned for good.
type Automod struct {
	classifier adapters.Classifier
	platform   Platform
	store      Store
	threshold  int
	muteWindow time.Duration
}

func NewAutomod(classifier adapters.Classifier, platform Platform, store Store, threshold int, muteWindow time.Duration) *Automod {
	return &Automod{
		classifier: classifier,
		platform:   platform,
		store:      store,
		threshold:  threshold,
		muteWindow: muteWindow,
	}
}

// ProcessMessage classifies messageText and escalates when it is unsafe.
// It reports whether a punitive action was taken. A privileged target
// surfaces as ErrTargetIsPrivileged after the strike was already written;
// the strike stands and the message stays up.
func (a *Automod) ProcessMessage(ctx context.Context, chatID int64, user *api.User, messageID int, messageText, lang string) (bool, error) {
	ctx, span := otel.Tracer("automod").Start(ctx, "process_message")
	defer span.End()
	span.SetAttributes(attribute.Int64("chat_id", chatID))

	result, err := a.classifier.Classify(ctx, messageText)
	if err != nil {
		return false, errors.WithMessage(err, "classify")
	}
	if err := a.store.SetKV(ctx, KVKeyLastClassifiedAt, time.Now().UTC().Format(time.RFC3339)); err != nil {
		a.getLogEntry().WithError(err).Trace("cant store classification timestamp")
	}
	if !result.IsUnsafe() {
		return false, nil
	}

	reason := result.Reason
	if reason == "" {
		reason = i18n.Get("Not specified", lang)
	}

	count, err := a.store.IncrementStrike(ctx, chatID, user.ID)
	if err != nil {
		return false, errors.WithMessage(err, "increment strike")
	}
	observability.RecordStrike()
	span.SetAttributes(attribute.Int("strike_count", count))

	var noticeKey, action string
	if count >= a.threshold {
		noticeKey = "You were banned for the message: {{ .text }}\nReason: {{ .reason }}\nViolations: {{ .count }}/{{ .threshold }}"
		action = db.ActionBan
		err = a.platform.BanMember(ctx, chatID, user.ID, 0, false)
	} else {
		noticeKey = "You were punished for the message: {{ .text }}\nReason: {{ .reason }}\nViolations: {{ .count }}/{{ .threshold }}"
		action = db.ActionMute
		err = a.platform.RestrictMember(ctx, chatID, user.ID, time.Now().Add(a.muteWindow).Unix())
	}
	if err != nil {
		// The strike from above stands either way.
		return false, err
	}

	notice := tool.ExecTemplate(i18n.Get(noticeKey, lang), map[string]any{
		"text":      messageText,
		"reason":    reason,
		"count":     count,
		"threshold": a.threshold,
	})
	if _, err := a.platform.SendMessage(ctx, user.ID, notice); err != nil {
		a.getLogEntry().WithError(err).Warn("cant notify user privately")
	}

	if err := a.platform.DeleteMessage(ctx, chatID, messageID); err != nil {
		a.getLogEntry().WithError(err).Warn("cant delete offending message")
	}

	record := &db.AuditRecord{
		ChatID:      chatID,
		UserID:      user.ID,
		Action:      action,
		MessageText: messageText,
		Reason:      automodReasonPrefix + reason,
	}
	if err := a.store.AddAuditRecord(ctx, record); err != nil {
		a.getLogEntry().WithError(err).Warn("cant write audit record")
	}
	observability.RecordModerationAction(action)

	a.getLogEntry().WithFields(log.Fields{
		"chat_id": chatID,
		"user_id": user.ID,
		"action":  action,
		"strikes": count,
	}).Info("automod action taken")
	return true, nil
}

func (a *Automod) getLogEntry() *log.Entry {
	return log.WithField("context", "automod")
}
