package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10

	// RevisionCacheSize bounds how many players' latest refresh revisions are remembered
	RevisionCacheSize = 4096
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Query parameters accepted by the stream endpoint
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

// Event types emitted by the stream itself rather than the game
const (
	// EventTypeConnected is the first message on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
	LogMsgStaleRefresh       = "Dropping refresh older than one already sent"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "SSE not supported"
	ErrMsgInvalidPlayer        = "invalid player filter"
)
