package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/drpriyams/neetpg-mcq-bot/internal/config"
	"github.com/drpriyams/neetpg-mcq-bot/internal/delivery/telegram"
	"github.com/drpriyams/neetpg-mcq-bot/internal/logger"
	"github.com/drpriyams/neetpg-mcq-bot/internal/repository"
	"github.com/drpriyams/neetpg-mcq-bot/internal/server"
	"github.com/drpriyams/neetpg-mcq-bot/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		zl.Fatal("failed to create bot api", zap.Error(err))
	}
	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "About this bot"},
		{Command: "add_mcq", Description: "Show the format for adding new MCQs (admin)"},
		{Command: "stats", Description: "Show database statistics (admin)"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		zl.Fatal("failed to open question store", zap.Error(err))
	}

	selector := service.NewSelector()
	evaluator := service.NewEvaluator(store)
	ingestor := service.NewIngestor(store)
	stats := service.NewStatsService(store)

	handler := telegram.NewHandler(bot, zl, evaluator, ingestor, stats, cfg.AdminChatID)
	dispatcher := telegram.NewDispatcher(bot, zl, store, selector, cfg.ChatID)

	switch cfg.Mode {
	case config.ModeWebhook:
		srv := server.New(zl, handler, dispatcher, cfg.CronSecret, cfg.HTTPAddr)
		if err := srv.Run(ctx); err != nil {
			zl.Fatal("http server failed", zap.Error(err))
		}

	case config.ModePoll:
		c := cron.New()
		_, err := c.AddFunc(cfg.CronSpec, func() {
			if _, err := dispatcher.Dispatch(ctx); err != nil {
				zl.Error("scheduled dispatch failed", zap.Error(err))
			}
		})
		if err != nil {
			zl.Fatal("invalid cron spec", zap.String("spec", cfg.CronSpec), zap.Error(err))
		}
		c.Start()
		defer c.Stop()

		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates := bot.GetUpdatesChan(u)

		if err := handler.Run(ctx, updates); err != nil && !errors.Is(err, context.Canceled) {
			zl.Fatal("telegram handler failed", zap.Error(err))
		}

	default:
		zl.Fatal("unknown mode", zap.String("mode", cfg.Mode))
	}

	zl.Info("shutdown complete")
}

func openStore(ctx context.Context, cfg *config.Config) (service.QuestionStore, error) {
	switch repository.Driver(cfg.Storage.Driver) {
	case repository.DriverCSV:
		return repository.NewCSVStore(cfg.Storage.CSVPath), nil
	case repository.DriverSQLite, repository.DriverPostgres:
		db, err := repository.OpenDB(ctx, repository.Driver(cfg.Storage.Driver), cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLStore(db, repository.Driver(cfg.Storage.Driver)), nil
	default:
		return nil, errors.New("unsupported storage driver: " + cfg.Storage.Driver)
	}
}
