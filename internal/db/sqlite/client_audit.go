package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/pborman/uuid"

	"github.com/iamwavecut/modbot/internal/db"
)

func (s *sqliteClient) AddAuditRecord(ctx context.Context, record *db.AuditRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if record.ID == "" {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO audit_log (id, chat_id, user_id, action, message_text, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.ChatID,
		record.UserID,
		record.Action,
		record.MessageText,
		record.Reason,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add audit record: %w", err)
	}
	return nil
}

func (s *sqliteClient) GetAuditRecords(ctx context.Context, chatID int64, userID int64, limit int) ([]*db.AuditRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var records []*db.AuditRecord
	err := s.db.SelectContext(ctx, &records, `
		SELECT * FROM audit_log
		WHERE chat_id = ? AND user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, chatID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit records: %w", err)
	}
	return records, nil
}
