package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// IncrementStrike bumps the strike counter for (chatID, userID) and returns
// the new count. The UPSERT is one statement, so concurrent increments never
// observe a stale count.
func (s *sqliteClient) IncrementStrike(ctx context.Context, chatID int64, userID int64) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	query := `
		INSERT INTO strikes (chat_id, user_id, count, updated_at)
		VALUES (?, ?, 1, datetime('now'))
		ON CONFLICT(chat_id, user_id) DO UPDATE SET
		count = count + 1,
		updated_at = excluded.updated_at
		RETURNING count
	`
	var count int
	if err := s.db.GetContext(ctx, &count, query, chatID, userID); err != nil {
		return 0, fmt.Errorf("failed to increment strike for %d/%d: %w", chatID, userID, err)
	}
	return count, nil
}

func (s *sqliteClient) GetStrikes(ctx context.Context, chatID int64, userID int64) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var count int
	err := s.db.GetContext(ctx, &count, `SELECT count FROM strikes WHERE chat_id = ? AND user_id = ?`, chatID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get strikes for %d/%d: %w", chatID, userID, err)
	}
	return count, nil
}

func (s *sqliteClient) ResetStrikes(ctx context.Context, chatID int64, userID int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	query := `
		INSERT INTO strikes (chat_id, user_id, count, updated_at)
		VALUES (?, ?, 0, datetime('now'))
		ON CONFLICT(chat_id, user_id) DO UPDATE SET
		count = 0,
		updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, chatID, userID); err != nil {
		return fmt.Errorf("failed to reset strikes for %d/%d: %w", chatID, userID, err)
	}
	return nil
}
