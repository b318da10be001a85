package handlers

import (
	"context"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/modbot/internal/bot"
	apperrors "github.com/iamwavecut/modbot/internal/errors"
	"github.com/iamwavecut/modbot/internal/handlers/moderation"
)

// Automod feeds every textual group message through the escalation
// pipeline. Classification failures never block the update chain.
type Automod struct {
	s        bot.Service
	pipeline *moderation.Automod
}

func NewAutomod(s bot.Service, pipeline *moderation.Automod) *Automod {
	return &Automod{s: s, pipeline: pipeline}
}

func (a *Automod) Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (bool, error) {
	if u == nil || u.Message == nil || chat == nil || user == nil {
		return true, nil
	}
	msg := u.Message
	if chat.IsPrivate() || msg.IsCommand() || user.IsBot {
		return true, nil
	}
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	if text == "" {
		return true, nil
	}

	lang := a.s.GetLanguage(ctx, chat.ID, user)
	acted, err := a.pipeline.ProcessMessage(ctx, chat.ID, user, msg.MessageID, text, lang)
	switch {
	case errors.Is(err, apperrors.ErrTargetIsPrivileged):
		// Strike recorded, no action possible against an admin.
		a.getLogEntry().WithFields(log.Fields{
			"chat_id": chat.ID,
			"user_id": user.ID,
		}).Info("unsafe message from privileged member, strike recorded")
		return true, nil
	case err != nil:
		a.getLogEntry().WithError(err).Error("automod pipeline failed")
		return true, nil
	case acted:
		return false, nil
	}
	return true, nil
}

func (a *Automod) getLogEntry() *log.Entry {
	return log.WithField("context", "automod")
}
