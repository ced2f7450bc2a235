package game

import "time"

// Gold bomb defaults
const (
	DefaultGoldBombChance   = 0.02
	DefaultGoldBombDuration = 20 * time.Second
)

// Registry defaults
const (
	DefaultCacheSize = 1024
	DefaultIdleTTL   = 30 * time.Minute
)

// DefaultSaveRetryInterval is how often failed saves are retried
const DefaultSaveRetryInterval = 30 * time.Second

// goldBombTimerName labels the effect timer in logs
const goldBombTimerName = "gold_bomb"

// Log messages
const (
	LogMsgSaveLoaded          = "Save record loaded"
	LogMsgSaveMissing         = "No save record found, starting fresh"
	LogMsgSaveDiscarded       = "Save record unreadable, starting fresh"
	LogMsgSaveFieldsDefaulted = "Save record fields reset to defaults"
	LogMsgSaveFailed          = "Failed to write save record"
	LogMsgPublishFailed       = "Failed to publish game event"
	LogMsgGoldBombStarted     = "Gold bomb started"
	LogMsgGoldBombArmFailed   = "Failed to arm gold bomb timer"
	LogMsgGameEvicted         = "Game evicted from registry"
	LogMsgRegistryShutdown    = "Shutting down game registry"
	LogMsgSavesRetried        = "Rewrote save records after earlier failures"
	LogMsgEvictedUnsaved      = "Game evicted before its save record could be written, keeping it for retry"
	LogMsgGameRevived         = "Unsaved game handed back to its returning player"
)

// Error messages
const (
	ErrMsgLoadSaveFailed  = "failed to load save record"
	ErrMsgInvalidConfig   = "invalid game config"
	ErrMsgRetrySaveFailed = "failed to rewrite save record for"
)
