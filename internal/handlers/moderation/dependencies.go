package moderation

import (
	"context"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/iamwavecut/modbot/internal/db"
)

// Platform is the subset of messenger operations moderation needs.
// Implementations map platform-side privilege refusals to
// errors.ErrTargetIsPrivileged.
type Platform interface {
	SendMessage(ctx context.Context, chatID int64, text string) (messageID int, err error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	RestrictMember(ctx context.Context, chatID, userID int64, untilUnix int64) error
	UnrestrictMember(ctx context.Context, chatID, userID int64) error
	BanMember(ctx context.Context, chatID, userID int64, untilUnix int64, revokeMessages bool) error
	UnbanMember(ctx context.Context, chatID, userID int64) error
	GetMember(ctx context.Context, chatID, userID int64) (*api.ChatMember, error)
}

// Store persists strike counters and the audit trail. Satisfied by
// db.Client.
type Store interface {
	IncrementStrike(ctx context.Context, chatID int64, userID int64) (int, error)
	GetStrikes(ctx context.Context, chatID int64, userID int64) (int, error)
	ResetStrikes(ctx context.Context, chatID int64, userID int64) error
	AddAuditRecord(ctx context.Context, record *db.AuditRecord) error
	SetKV(ctx context.Context, key string, value string) error
}

// Authorizer answers whether a member may issue punitive commands.
type Authorizer interface {
	IsAdmin(ctx context.Context, chatID, userID int64) (bool, error)
}
