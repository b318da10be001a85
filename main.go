package main

import (
	"context"
	"os"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iamwavecut/modbot/internal/adapters"
	"github.com/iamwavecut/modbot/internal/adapters/llm/gemini"
	"github.com/iamwavecut/modbot/internal/adapters/llm/local"
	"github.com/iamwavecut/modbot/internal/adapters/llm/openai"
	"github.com/iamwavecut/modbot/internal/bot"
	"github.com/iamwavecut/modbot/internal/config"
	"github.com/iamwavecut/modbot/internal/event"
	"github.com/iamwavecut/modbot/internal/handlers"
	"github.com/iamwavecut/modbot/internal/handlers/moderation"
	"github.com/iamwavecut/modbot/internal/infra"
	"github.com/iamwavecut/modbot/internal/infrastructure/telegram"
	"github.com/iamwavecut/modbot/internal/lifecycle"
	"github.com/iamwavecut/modbot/internal/observability"

	"github.com/iamwavecut/modbot/internal/db/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatalln("cant load config")
	}
	log.SetFormatter(&config.MbFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.Level(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := observability.Init(ctx, cfg.Moderation.MetricsAddr); err != nil {
		log.WithError(err).Fatalln("cant init observability")
	}

	botAPI, err := api.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		log.WithError(err).Errorln("cant initialize bot api")
		time.Sleep(1 * time.Second)
		log.Fatalln("exiting")
	}
	if log.Level(cfg.LogLevel) == log.TraceLevel {
		botAPI.Debug = true
	}

	dbClient, err := sqlite.NewSQLiteClient(ctx, infra.GetWorkDir(), "bot.db")
	if err != nil {
		log.WithError(err).Fatalln("cant initialize database")
	}

	classifier, err := buildClassifier(cfg)
	if err != nil {
		log.WithError(err).Fatalln("cant initialize classifier")
	}

	if lastRun, err := dbClient.GetKV(ctx, moderation.KVKeyLastClassifiedAt); err == nil && lastRun != "" {
		log.WithField("at", lastRun).Info("last automod classification run")
	}

	platform := telegram.NewOperations(botAPI)
	moderator := moderation.NewModerator(platform, dbClient, moderation.NewAuthorizer(platform), cfg.Moderation.NoticeTTL)
	pipeline := moderation.NewAutomod(classifier, platform, dbClient, cfg.Moderation.StrikeThreshold, cfg.Moderation.AutomodMuteWindow)

	service := bot.NewService(botAPI, dbClient, cfg)
	bot.RegisterUpdateHandler("admin", handlers.NewAdmin(service, moderator))
	bot.RegisterUpdateHandler("automod", handlers.NewAutomod(service, pipeline))

	var stopEventWorker context.CancelFunc
	runtime := lifecycle.NewRuntime(
		lifecycle.ComponentFunc{
			OnStop: func(context.Context) error { return dbClient.Close() },
		},
		lifecycle.ComponentFunc{
			OnStart: func(context.Context) error { stopEventWorker = event.RunWorker(); return nil },
			OnStop:  func(context.Context) error { stopEventWorker(); return nil },
		},
	)
	if err := runtime.Start(ctx); err != nil {
		log.WithError(err).Fatalln("cant start components")
	}

	updateProcessor := bot.NewUpdateProcessor(service)
	updateConfig := api.NewUpdate(0)
	updateConfig.Timeout = 60
	updates, updateErrors := bot.GetUpdatesChans(ctx, botAPI, updateConfig)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case err := <-updateErrors:
				return errors.WithMessage(err, "get updates")
			case update := <-updates:
				infra.GoRecoverable(1, "process_update", func() {
					if err := updateProcessor.Process(gctx, &update); err != nil {
						log.WithError(err).Errorln("cant process update")
					}
				})
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})
	g.Go(func() error {
		select {
		case <-infra.MonitorExecutable(gctx):
			return errors.New("executable file was modified")
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Errorln("shutting down")
	}
	if err := runtime.Stop(context.Background()); err != nil {
		log.WithError(err).Errorln("cant stop components")
	}
}

func buildClassifier(cfg config.Config) (adapters.Classifier, error) {
	logger := log.WithField("context", "llm")
	switch cfg.LLM.Type {
	case "openai":
		return adapters.NewClassifier(openai.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, logger), cfg.LLM.Type), nil
	case "gemini":
		return adapters.NewClassifier(gemini.NewGemini(cfg.LLM.APIKey, cfg.LLM.Model, logger), cfg.LLM.Type), nil
	case "local":
		return local.NewClassifier(infra.GetWorkDir("models"), cfg.LLM.Model, logger)
	}
	return nil, errors.Errorf("unknown llm api type %q", cfg.LLM.Type)
}
