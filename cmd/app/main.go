package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/osse101/SimpleIG_Go/internal/bootstrap"
	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/server"
	"github.com/osse101/SimpleIG_Go/internal/sse"
)

// @title SimpleIG API
// @version 1.0
// @description Incremental clicker game: points, upgrades, prestige and a gold bomb.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg, os.Stdout)

	if err := checkEnv(cfg); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	bus := event.NewMemoryBus()
	games, err := bootstrap.InitializeGames(cfg, st.Store, bus, clock.NewRealClock())
	if err != nil {
		st.Close()
		slog.Error("Failed to initialize games", "error", err)
		os.Exit(1)
	}

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		Games:    games,
	}); err != nil {
		hub.Stop()
		st.Close()
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	background := bootstrap.StartBackgroundJobs(games, cfg.SaveRetry)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, games, hub, st.Ready)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Background: background,
		Games:      games,
		Storage:    st,
	})
}

// checkEnv enforces the required variables outside dev, where a missing API key disables auth
func checkEnv(cfg *config.Config) error {
	required := config.ServerRequiredEnvVars
	if cfg.StorageBackend == bootstrap.StoragePostgres {
		required = append(slices.Clone(required), config.DatabaseRequiredEnvVars...)
	}

	warnings, err := config.ValidateEnvWithWarnings(required...)
	if err != nil {
		if cfg.Environment == config.DefaultEnvironment {
			slog.Warn("Environment incomplete, continuing in dev mode", "error", err)
			return nil
		}
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}
	return nil
}
