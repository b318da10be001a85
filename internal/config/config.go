package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-envconfig"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		TelegramAPIToken string   `env:"TOKEN,required"`
		DefaultLanguage  string   `env:"LANG,default=en"`
		EnabledHandlers  []string `env:"HANDLERS,default=admin,automod"`
		LogLevel         int      `env:"LOG_LEVEL,default=2"`
		DotPath          string   `env:"DOT_PATH,default=~/.modbot"`
		LLM              LLM
		Moderation       Moderation
	}

	LLM struct {
		APIKey  string `env:"LLM_API_KEY"`
		Model   string `env:"LLM_API_MODEL,default=gpt-4o-mini"`
		BaseURL string `env:"LLM_API_URL,default=https://api.openai.com/v1"`
		Type    string `env:"LLM_API_TYPE,default=openai"`
	}

	Moderation struct {
		StrikeThreshold   int           `env:"STRIKE_THRESHOLD,default=3"`
		AutomodMuteWindow time.Duration `env:"AUTOMOD_MUTE_WINDOW,default=1h"`
		NoticeTTL         time.Duration `env:"NOTICE_TTL,default=2m"`
		MetricsAddr       string        `env:"METRICS_ADDR,default=:2112"`
	}
)

var (
	once         sync.Once
	globalConfig = &Config{}
	globalErr    error
)

func Load() (Config, error) {
	once.Do(func() {
		cfg := &Config{}
		envcfg := envconfig.Config{
			Lookuper: envconfig.PrefixLookuper("MB_", envconfig.OsLookuper()),
			Target:   cfg,
		}
		if err := envconfig.ProcessWith(context.Background(), &envcfg); err != nil {
			globalErr = fmt.Errorf("process env config: %w", err)
			return
		}
		home, err := os.UserHomeDir()
		if err != nil {
			globalErr = fmt.Errorf("get user home directory: %w", err)
			return
		}
		cfg.DotPath = strings.Replace(cfg.DotPath, "~", home, 1)
		log.Traceln("loaded config")
		globalConfig = cfg
	})
	return *globalConfig, globalErr
}

func Get() Config {
	cfg, err := Load()
	if err != nil {
		log.WithField("error", err.Error()).Error("cant load config")
	}
	return cfg
}
