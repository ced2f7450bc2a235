package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/SimpleIG_Go/internal/bootstrap"
	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/console"
	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/event"
)

const sessionTTL = 24 * time.Hour

func main() {
	player := flag.String("player", domain.DefaultPlayerID, "player id; the default player uses the bare save key")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colored output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	// Keep the game screen readable unless a level was asked for
	if _, ok := os.LookupEnv(config.EnvLogLevel); !ok {
		cfg.LogLevel = "warn"
	}
	bootstrap.SetupLogger(cfg, os.Stderr)
	// The console holds its game for the whole session without going back to the registry
	cfg.GameIdleTTL = sessionTTL

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

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

	svc, err := games.Get(ctx, *player)
	if err != nil {
		st.Close()
		slog.Error("Failed to load game", "player", *player, "error", err)
		os.Exit(1)
	}

	background := bootstrap.StartBackgroundJobs(games, cfg.SaveRetry)

	c := console.New(svc, os.Stdout, console.Options{Color: !*noColor})
	c.Watch(bus)
	if err := c.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		slog.Error("Console failed", "error", err)
	}

	bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
		Background: background,
		Games:      games,
		Storage:    st,
	})
}
