package bootstrap

import (
	"io"
	"log/slog"
	"slices"

	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/logger"
)

// SetupLogger installs the default slog logger described by cfg, writing to w.
// Service, version and environment ride on every record; source locations
// are only added in development environments.
func SetupLogger(cfg *config.Config, w io.Writer) {
	addSource := slices.Contains(devEnvironments, cfg.Environment)

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgStartingSimpleIG,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"storage", cfg.StorageBackend,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"save_dir", cfg.SaveDir)
}
