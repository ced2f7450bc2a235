package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SimpleIG_Go/internal/bootstrap"
	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg, os.Stdout)

	if err := config.ValidateEnv(config.DiscordRequiredEnvVars...); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:                 cfg.DiscordToken,
		AppID:                 cfg.DiscordAppID,
		APIURL:                cfg.APIURL,
		APIKey:                cfg.APIKey,
		NotificationChannelID: cfg.DiscordNotificationChannel,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	bot.Registry.RegisterAll(discord.GameCommands()...)

	if err := bot.Start(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	defer bot.Stop()

	if cfg.DiscordForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceCommandUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	httpServer := discord.NewHTTPServer(cfg.DiscordHealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.DiscordNotificationChannel != "" {
		sseClient := discord.NewSSEClient(cfg.APIURL, cfg.APIKey, discord.NotificationEventTypes)
		discord.NewSSENotifier(bot).RegisterHandlers(sseClient)
		sseClient.Start(ctx)
		defer sseClient.Stop()
		slog.Info("SSE notifications enabled", "channel_id", cfg.DiscordNotificationChannel)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	<-ctx.Done()
	slog.Info("Shutting down Discord bot")
}
