package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SimpleIG_Go/internal/game"
	"github.com/osse101/SimpleIG_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Background *Background
	Games      *game.Registry
	Storage    *Storage
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests, close SSE streams)
// 2. Background jobs (save retries)
// 3. Game registry (last save retry, cancel gold bomb timers)
// 4. Save storage (close the database pool)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultShutdownTimeout)
		defer cancel()
	}

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Background != nil {
		slog.Info(LogMsgStoppingBackground)
		components.Background.Stop()
	}

	if components.Games != nil {
		slog.Info(LogMsgShuttingDownGames)
		if err := components.Games.Shutdown(ctx); err != nil {
			slog.Error(LogMsgGamesShutdownFailed, "error", err)
		}
	}

	components.Storage.Close()

	slog.Info(LogMsgServerStopped)
}
