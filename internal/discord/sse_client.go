package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

var errStreamClosed = errors.New("stream closed unexpectedly")

// SSEEvent represents a parsed SSE event
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	PlayerID  string          `json:"player_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler handles a specific event type
type SSEEventHandler func(event SSEEvent) error

// SSEClient manages the connection to the API's SSE endpoint
type SSEClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	handlers   map[string][]SSEEventHandler
	httpClient *http.Client
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	connected  bool

	initialBackoff time.Duration
}

// NewSSEClient creates a new SSE client
func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	return &SSEClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		eventTypes: eventTypes,
		handlers:   make(map[string][]SSEEventHandler),
		httpClient: &http.Client{
			Timeout: 0, // No timeout for SSE connections
		},
		shutdown:       make(chan struct{}),
		initialBackoff: sseInitialBackoff,
	}
}

// OnEvent registers a handler for a specific event type
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start begins the SSE connection with auto-reconnect
func (c *SSEClient) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.connectLoop(ctx)
}

// Stop gracefully shuts down the SSE client
func (c *SSEClient) Stop() {
	c.stopOnce.Do(func() { close(c.shutdown) })
	c.wg.Wait()
}

// IsConnected returns true if the client is connected
func (c *SSEClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *SSEClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *SSEClient) connectLoop(ctx context.Context) {
	defer c.wg.Done()

	// The request context also ends on Stop so a blocked read returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	backoff := c.initialBackoff
	consecutiveFailures := 0

	for {
		if ctx.Err() != nil {
			slog.Info(sseLogMsgClientStopped)
			return
		}

		err := c.connect(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			slog.Info(sseLogMsgClientStopped)
			return
		}

		if errors.Is(err, errStreamClosed) {
			// The server went away after a healthy session
			backoff = c.initialBackoff
			consecutiveFailures = 0
		}
		consecutiveFailures++
		slog.Warn(sseLogMsgConnectionFailed,
			"error", err,
			"backoff", backoff,
			"consecutive_failures", consecutiveFailures)

		select {
		case <-time.After(backoff):
			backoff = time.Duration(float64(backoff) * sseBackoffMultiplier)
			if backoff > sseMaxBackoff {
				backoff = sseMaxBackoff
			}
		case <-ctx.Done():
			slog.Info(sseLogMsgClientStopped)
			return
		}
	}
}

func (c *SSEClient) streamURL() string {
	u := c.baseURL + sseEventsPath
	if len(c.eventTypes) > 0 {
		u += "?" + url.Values{"types": {strings.Join(c.eventTypes, ",")}}.Encode()
	}
	return u
}

func (c *SSEClient) connect(ctx context.Context) error {
	streamURL := c.streamURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	c.setConnected(true)
	slog.Info(sseLogMsgClientConnected, "url", streamURL)

	return c.readEvents(ctx, resp.Body)
}

func (c *SSEClient) readEvents(ctx context.Context, body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var eventID, eventType string
	var data []string

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if line == "" {
			// Empty line means end of event
			if len(data) > 0 {
				c.dispatchEvent(eventID, eventType, strings.Join(data, "\n"))
			}
			eventID, eventType, data = "", "", nil
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "id":
			eventID = value
		case "event":
			eventType = value
		case "data":
			data = append(data, value)
		}
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("error reading stream: %w", err)
	}

	return errStreamClosed
}

func (c *SSEClient) dispatchEvent(id, eventType, data string) {
	if eventType == "keepalive" || eventType == "connected" {
		return
	}

	var event SSEEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "data", data)
		return
	}

	if eventType != "" {
		event.Type = eventType
	}
	if id != "" {
		event.ID = id
	}

	c.mu.RLock()
	handlers := c.handlers[event.Type]
	c.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			slog.Error(sseLogMsgHandlerError,
				"event_type", event.Type,
				"error", err)
		}
	}
}
