package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"homework_bot/internal/bot"
	"homework_bot/internal/config"
	"homework_bot/internal/logging"
	"homework_bot/internal/practicum"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Уровень из конфига ещё неизвестен, fatal пишется всегда
		log, _ := logging.New(config.DefaultLogLevel)
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		log, _ = logging.New(config.DefaultLogLevel)
		log.Warn().Err(err).Msg("Invalid LOG_LEVEL, using default")
	}
	if cfg.EnvFileErr != nil {
		log.Warn().Err(cfg.EnvFileErr).Msg(".env file not found")
	}

	api, err := bot.NewTelegramAPI(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	client := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, &http.Client{Timeout: cfg.HTTPTimeout})
	notifier := bot.NewTelegramNotifier(api, cfg.TelegramChatID, log)
	b := bot.New(cfg, client, notifier, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped with error")
	}
}
