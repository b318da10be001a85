package bot

import (
	"context"

	api "github.com/OvyFlash/telegram-bot-api"

	"github.com/iamwavecut/modbot/internal/config"
	"github.com/iamwavecut/modbot/internal/db"
)

type service struct {
	bot *api.BotAPI
	db  db.Client
	cfg config.Config
}

func NewService(bot *api.BotAPI, db db.Client, cfg config.Config) *service {
	return &service{
		bot: bot,
		db:  db,
		cfg: cfg,
	}
}

func (s *service) GetBot() *api.BotAPI {
	return s.bot
}

func (s *service) GetDB() db.Client {
	return s.db
}

// GetLanguage prefers the sender's client language when we ship translations
// for it, otherwise the configured default.
func (s *service) GetLanguage(ctx context.Context, chatID int64, user *api.User) string {
	_ = ctx
	_ = chatID
	if user != nil && user.LanguageCode == "ru" {
		return user.LanguageCode
	}
	return s.cfg.DefaultLanguage
}
