package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// GetKV reads one operational value; an absent key reads as "".
func (s *sqliteClient) GetKV(ctx context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_store WHERE key = ?`, key)
	switch {
	case err == sql.ErrNoRows:
		return "", nil
	case err != nil:
		return "", errors.WithMessagef(err, "get kv %q", key)
	}
	return value, nil
}

func (s *sqliteClient) SetKV(ctx context.Context, key string, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, key, value)
	return errors.WithMessagef(err, "set kv %q", key)
}
