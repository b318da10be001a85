package handlers

import (
	"context"
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamwavecut/tool"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/modbot/internal/bot"
	apperrors "github.com/iamwavecut/modbot/internal/errors"
	"github.com/iamwavecut/modbot/internal/handlers/moderation"
	"github.com/iamwavecut/modbot/internal/i18n"
)

const helpText = `Moderation commands (reply to a message to pick the target):
/mute <reason> forbids the user to post, /unmute undoes it
/ban <reason> removes the user from the chat, /unban undoes it
/kick [reason] removes and immediately re-admits the user
/strike get|reset inspects or resets the user's violation counter
Modifier letters may prefix mute/ban/kick in any order:
d deletes the offending message, s is silent, t takes a duration (/tmute flood 10m)`

// Admin routes moderation commands to the command executor and maps
// execution errors back to user-facing replies.
type Admin struct {
	s         bot.Service
	moderator *moderation.Moderator
}

func NewAdmin(s bot.Service, moderator *moderation.Moderator) *Admin {
	return &Admin{s: s, moderator: moderator}
}

func (a *Admin) Handle(ctx context.Context, u *api.Update, chat *api.Chat, user *api.User) (bool, error) {
	if u == nil || u.Message == nil || chat == nil || user == nil {
		return true, nil
	}
	msg := u.Message
	if !msg.IsCommand() {
		return true, nil
	}
	name := msg.Command()
	lang := a.s.GetLanguage(ctx, chat.ID, user)

	if name == "help" {
		a.reply(chat.ID, helpText)
		return false, nil
	}

	cmd, isModeration := moderation.ParseCommand(name)
	if !isModeration && name != "strike" {
		return true, nil
	}
	if !chat.IsGroup() && !chat.IsSuperGroup() {
		a.reply(chat.ID, i18n.Get("This command can only be used in groups", lang))
		return false, nil
	}

	req := buildRequest(msg, chat, user, lang)

	var err error
	if name == "strike" {
		var op moderation.StrikeOp
		if len(req.Args) > 0 {
			op = moderation.StrikeOp(req.Args[0])
		}
		switch op {
		case moderation.StrikeGet, moderation.StrikeReset:
			err = a.moderator.Strike(ctx, req, moderation.StrikeOptions{Op: op})
		default:
			a.reply(chat.ID, i18n.Get("Usage: /strike get|reset", lang))
			return false, nil
		}
	} else {
		err = a.moderator.Execute(ctx, cmd, req)
	}
	if err != nil {
		a.replyForError(chat.ID, lang, name, err)
	}
	return false, nil
}

func buildRequest(msg *api.Message, chat *api.Chat, user *api.User, lang string) moderation.Request {
	req := moderation.Request{
		ChatID: chat.ID,
		Actor:  user,
		Args:   strings.Fields(msg.CommandArguments()),
		Lang:   lang,
	}
	if reply := msg.ReplyToMessage; reply != nil {
		req.Target = reply.From
		req.TargetMessageID = reply.MessageID
		req.TargetText = reply.Text
		if req.TargetText == "" {
			req.TargetText = reply.Caption
		}
	}
	return req
}

// replyForError translates the moderation error taxonomy into chat
// replies. Unexpected failures are logged and their text echoed back, as
// the operator is usually watching the chat where the command failed.
func (a *Admin) replyForError(chatID int64, lang, command string, err error) {
	var key string
	switch {
	case errors.Is(err, apperrors.ErrMissingReason):
		key = "Please provide a one-word reason"
	case errors.Is(err, apperrors.ErrMissingDuration):
		key = "Please provide a duration"
	case errors.Is(err, apperrors.ErrInvalidDurationFormat):
		key = "Invalid duration format, use e.g. 10m, 1h, 2d"
	case errors.Is(err, apperrors.ErrUserNotReplied):
		key = "This command must be used as a reply to a message"
	case errors.Is(err, apperrors.ErrNotAuthorized):
		key = "This command is only available to administrators"
	case errors.Is(err, apperrors.ErrTargetIsPrivileged):
		key = "This command is not applicable to administrators"
	default:
		a.getLogEntry().WithField("command", command).WithError(err).Error("command failed")
		a.reply(chatID, err.Error())
		return
	}
	a.reply(chatID, i18n.Get(key, lang))
}

func (a *Admin) reply(chatID int64, text string) {
	b := a.s.GetBot()
	_ = tool.Err(b.Send(api.NewMessage(chatID, text)))
}

func (a *Admin) getLogEntry() *log.Entry {
	return log.WithField("context", "admin")
}
