package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyPlayerID = "player_id"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat formats aggregated handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	LogMsgPublishFailed = "Event publish failed"
)
