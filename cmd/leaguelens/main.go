package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/leaguelens/leaguelens/internal/api/espn"
	"github.com/leaguelens/leaguelens/internal/api/rest"
	"github.com/leaguelens/leaguelens/internal/bot"
	"github.com/leaguelens/leaguelens/internal/config"
	"github.com/leaguelens/leaguelens/internal/normalize"
	"github.com/leaguelens/leaguelens/internal/repository/memory"
	"github.com/leaguelens/leaguelens/internal/repository/redis"
	"github.com/leaguelens/leaguelens/internal/scheduler"
	"github.com/leaguelens/leaguelens/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	espnClient := espn.NewClient(cfg.ESPNAPI)
	espnAPI := espn.NewAPI(espnClient)

	store, closeStore := newSnapshotStore(cfg)
	defer closeStore()

	opts := normalize.Options{FirstWeek: cfg.Season.FirstWeek, LastWeek: cfg.Season.LastWeek}
	fantasyService := service.NewFantasyService(espnAPI, store, opts)

	var sendMessage func(string) error
	var telegramBot *bot.TelegramBot
	if cfg.Telegram.Token != "" {
		telegramBot, err = bot.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.ChatID, fantasyService)
		if err != nil {
			return err
		}
		sendMessage = telegramBot.SendMessage
	}

	sched, err := scheduler.NewScheduler(fantasyService, sendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	server := rest.NewServer(cfg.Server.Port, fantasyService)

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telegramBot != nil {
		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newSnapshotStore prefers Redis when configured and falls back to the
// in-memory store.
func newSnapshotStore(cfg *config.Config) (service.SnapshotStore, func()) {
	if cfg.Redis.URL != "" {
		repo, err := redis.NewRepository(cfg.Redis.URL, cfg.ESPNAPI.LeagueID)
		if err != nil {
			slog.Error("Error connecting to Redis, using in-memory store", "error", err)
		} else {
			return repo, func() {
				if err := repo.Close(); err != nil {
					slog.Error("Error closing Redis", "error", err)
				}
			}
		}
	}
	return memory.NewRepository(), func() {}
}
