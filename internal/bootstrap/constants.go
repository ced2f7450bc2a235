package bootstrap

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// DirPermission is the standard permission for creating directories
const DirPermission = 0755

// Environments that log source locations
var devEnvironments = []string{"dev", "development"}

// DefaultShutdownTimeout bounds GracefulShutdown when the caller has no deadline
const DefaultShutdownTimeout = 10 * time.Second

// Log messages for logger initialization
const (
	LogMsgStartingSimpleIG    = "Starting SimpleIG"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Storage messages
const (
	LogMsgStorageInitialized  = "Save storage initialized"
	ErrMsgUnknownStorage      = "unknown storage backend"
	ErrMsgConnectDatabase     = "failed to connect to database"
	ErrMsgMigrateDatabase     = "failed to migrate database"
	ErrMsgCreateSaveDir       = "failed to create save directory"
	ErrMsgSaveDirUnavailable  = "save directory unavailable"
	ErrMsgInvalidGameSettings = "invalid game settings"
)

// Event handler messages
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Background job messages
const (
	LogMsgSaveRetryScheduled = "Save retry job scheduled"
	saveRetryWorkers         = 1
	saveRetryQueueSize       = 1
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownGames    = "Stopping loaded games..."
	LogMsgStoppingBackground   = "Stopping background jobs..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgGamesShutdownFailed  = "Game registry shutdown failed"
	LogMsgStorageCloseFailed   = "Save storage close failed"
)
