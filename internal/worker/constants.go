package worker

// ============================================================================
// Log Messages - Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Effect Timer
// ============================================================================

const (
	LogMsgEffectTimerArmed           = "Effect timer armed"
	LogMsgEffectTimerShutdownTimeout = "Effect timer shutdown timeout"
)

// ============================================================================
// Error Messages
// ============================================================================

const ErrMsgTimerShutdown = "effect timer is shut down"
