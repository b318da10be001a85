package telegram

import (
	"context"
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/pkg/errors"

	apperrors "github.com/iamwavecut/modbot/internal/errors"
)

// Operations wraps the bot client with the moderation primitives the
// command layer needs. Privilege failures reported by the platform are
// mapped to apperrors.ErrTargetIsPrivileged so callers can treat them as
// terminal without parsing error text themselves.
type Operations struct {
	bot *api.BotAPI
}

func NewOperations(bot *api.BotAPI) *Operations {
	return &Operations{bot: bot}
}

// privilegeMarkers are substrings the platform uses when an action is
// refused because the target outranks the bot.
var privilegeMarkers = []string{
	"not enough rights",
	"can't remove chat owner",
	"user is an administrator of the chat",
	"can't restrict self",
}

func wrapPrivilegeError(err error, msg string) error {
	if err == nil {
		return nil
	}
	for _, marker := range privilegeMarkers {
		if strings.Contains(err.Error(), marker) {
			return apperrors.ErrTargetIsPrivileged
		}
	}
	return errors.WithMessage(err, msg)
}

func (o *Operations) SendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	_ = ctx
	msg := api.NewMessage(chatID, text)
	sent, err := o.bot.Send(msg)
	if err != nil {
		return 0, errors.WithMessage(err, "send message")
	}
	return sent.MessageID, nil
}

func (o *Operations) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	_ = ctx
	if _, err := o.bot.Request(api.NewDeleteMessage(chatID, messageID)); err != nil {
		return errors.WithMessage(err, "delete message")
	}
	return nil
}

// RestrictMember revokes the sending permissions of a member until
// untilUnix, or indefinitely when untilUnix is zero.
func (o *Operations) RestrictMember(ctx context.Context, chatID, userID int64, untilUnix int64) error {
	_ = ctx
	config := api.RestrictChatMemberConfig{
		ChatMemberConfig: api.ChatMemberConfig{
			ChatConfig: api.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
		UntilDate: untilUnix,
		Permissions: &api.ChatPermissions{
			CanSendMessages:       false,
			CanSendOtherMessages:  false,
			CanAddWebPagePreviews: false,
		},
	}
	_, err := o.bot.Request(config)
	return wrapPrivilegeError(err, "restrict member")
}

func (o *Operations) UnrestrictMember(ctx context.Context, chatID, userID int64) error {
	_ = ctx
	config := api.RestrictChatMemberConfig{
		ChatMemberConfig: api.ChatMemberConfig{
			ChatConfig: api.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
		Permissions: &api.ChatPermissions{
			CanSendMessages:       true,
			CanSendOtherMessages:  true,
			CanAddWebPagePreviews: true,
		},
	}
	_, err := o.bot.Request(config)
	return wrapPrivilegeError(err, "unrestrict member")
}

// BanMember excludes a member until untilUnix (zero means forever) and
// optionally revokes their recent messages.
func (o *Operations) BanMember(ctx context.Context, chatID, userID int64, untilUnix int64, revokeMessages bool) error {
	_ = ctx
	config := api.BanChatMemberConfig{
		ChatMemberConfig: api.ChatMemberConfig{
			ChatConfig: api.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
		UntilDate:      untilUnix,
		RevokeMessages: revokeMessages,
	}
	_, err := o.bot.Request(config)
	return wrapPrivilegeError(err, "ban member")
}

func (o *Operations) UnbanMember(ctx context.Context, chatID, userID int64) error {
	_ = ctx
	config := api.UnbanChatMemberConfig{
		ChatMemberConfig: api.ChatMemberConfig{
			ChatConfig: api.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
	}
	_, err := o.bot.Request(config)
	return wrapPrivilegeError(err, "unban member")
}

func (o *Operations) GetMember(ctx context.Context, chatID, userID int64) (*api.ChatMember, error) {
	_ = ctx
	member, err := o.bot.GetChatMember(api.GetChatMemberConfig{
		ChatConfigWithUser: api.ChatConfigWithUser{
			ChatConfig: api.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
	})
	if err != nil {
		return nil, errors.WithMessage(err, "get chat member")
	}
	return &member, nil
}
