package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/fault"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	mainLogger := logger.Component("main")
	mainLogger.Info("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		var f *fault.Fault
		if errors.As(err, &f) && len(f.Missing) > 0 {
			for _, name := range f.Missing {
				logger.Critical(mainLogger, "Required environment variable %s is not set", name)
			}
		} else {
			logger.Critical(mainLogger, "Could not load application configuration: %v", err)
		}
		os.Exit(1)
	}

	logger.Init(cfg)
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Period: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.RetryPeriod)

	// Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg.TelegramToken, "", logger.Component("telebot"))
	if err != nil {
		logger.Critical(mainLogger, "Could not create Telegram bot: %v", err)
		os.Exit(1)
	}

	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component("notifier"))
	apiClient := practicum.NewClient(cfg.PracticumToken,
		practicum.WithEndpoint(cfg.Endpoint),
		practicum.WithTimeout(cfg.RequestTimeout),
	)
	pollService := app.NewPollService(apiClient, notifier, logger.Component("poller"))
	mainLogger.Info("Poll service initialized.")

	telegram.RegisterBotCommands(bot, cfg.TelegramChatID, pollService, logger.Component("telegram"))

	pollScheduler := scheduler.NewPollScheduler(pollService, logger.Component("scheduler"), cfg.RetryPeriod)
	if err := pollScheduler.Start(); err != nil {
		mainLogger.Fatalf("Could not start poll scheduler: %v", err)
	}

	go bot.Start()
	mainLogger.Info("Application setup complete. Bot and scheduler are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	bot.Stop()
	pollScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
