package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerHTTP     = "Invalid player id"
	ErrMsgUnknownUpgradeHTTP    = "Unknown upgrade. Valid options: cooldown, button"
	ErrMsgLoadGameFailed        = "Failed to load game"
)

// Log messages
const (
	LogMsgLoadGameFailed  = "Failed to load game"
	LogMsgActionRejected  = "Game action rejected"
	LogMsgActionFailed    = "Game action failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgDecodeFailedFmt = "Failed to decode %s request"
	LogMsgDecodedFmt      = "%s request decoded"
	LogMsgActionSucceeded = "Game action applied"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStorageUnavailable   = "storage unavailable"
)
