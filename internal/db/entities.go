package db

import "time"

// Directional audit action tags.
const (
	ActionMute   = "MUTE"
	ActionUnmute = "UNMUTE"
	ActionBan    = "BAN"
	ActionUnban  = "UNBAN"
	ActionKick   = "KICK"
)

type StrikeRecord struct {
	ChatID    int64     `db:"chat_id"`
	UserID    int64     `db:"user_id"`
	Count     int       `db:"count"`
	UpdatedAt time.Time `db:"updated_at"`
}

type AuditRecord struct {
	ID          string    `db:"id"`
	ChatID      int64     `db:"chat_id"`
	UserID      int64     `db:"user_id"`
	Action      string    `db:"action"`
	MessageText string    `db:"message_text"`
	Reason      string    `db:"reason"`
	CreatedAt   time.Time `db:"created_at"`
}
