package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/database"
	"github.com/osse101/SimpleIG_Go/internal/database/postgres"
	"github.com/osse101/SimpleIG_Go/internal/handler"
	"github.com/osse101/SimpleIG_Go/internal/repository"
	"github.com/osse101/SimpleIG_Go/internal/storage"
)

// Storage is the selected save backend with its readiness check
type Storage struct {
	Backend string
	Store   repository.SaveStore
	Ready   handler.HealthChecker
	close   func()
}

// Close releases backend resources such as the database pool
func (s *Storage) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// InitializeStorage opens the save backend chosen by cfg.StorageBackend.
// The postgres backend applies pending migrations before returning.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st *Storage

	switch cfg.StorageBackend {
	case StorageMemory:
		st = &Storage{
			Store: storage.NewMemoryStore(),
			Ready: handler.HealthCheckFunc(func(context.Context) error { return nil }),
		}

	case StorageFile:
		fs, err := storage.NewFileStore(cfg.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgCreateSaveDir, err)
		}
		st = &Storage{Store: fs, Ready: dirCheck(fs.Dir())}

	case StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
		}
		st = &Storage{
			Store: postgres.NewSaveRepository(pool),
			Ready: handler.HealthCheckFunc(pool.Ping),
			close: pool.Close,
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.StorageBackend)
	}

	st.Backend = cfg.StorageBackend
	slog.Info(LogMsgStorageInitialized, "backend", st.Backend)
	return st, nil
}

// dirCheck reports the save directory as unavailable once it is gone
func dirCheck(dir string) handler.HealthChecker {
	return handler.HealthCheckFunc(func(context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveDirUnavailable, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s: %s is not a directory", ErrMsgSaveDirUnavailable, dir)
		}
		return nil
	})
}
