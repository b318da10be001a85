package db

import "context"

type Client interface {
	Close() error

	// Strike ledger. IncrementStrike is a single atomic
	// read-modify-write returning the post-increment count.
	IncrementStrike(ctx context.Context, chatID int64, userID int64) (int, error)
	GetStrikes(ctx context.Context, chatID int64, userID int64) (int, error)
	ResetStrikes(ctx context.Context, chatID int64, userID int64) error

	// Audit log, written only after the platform action succeeded.
	AddAuditRecord(ctx context.Context, record *AuditRecord) error
	GetAuditRecords(ctx context.Context, chatID int64, userID int64, limit int) ([]*AuditRecord, error)

	GetKV(ctx context.Context, key string) (string, error)
	SetKV(ctx context.Context, key string, value string) error
}
