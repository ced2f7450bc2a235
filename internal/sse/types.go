package sse

// ConnectedPayload is sent once when a client attaches to the stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
	Player   string   `json:"player,omitempty"`
}
