package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const healthCheckTimeout = 3 * time.Second

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

// CommandStats counts handled commands
type CommandStats struct {
	started time.Time
	count   atomic.Int64

	mu   sync.Mutex
	last time.Time
}

// NewCommandStats starts the uptime clock
func NewCommandStats() *CommandStats {
	return &CommandStats{started: time.Now()}
}

// Record increments the command counter
func (c *CommandStats) Record() {
	c.count.Add(1)
	c.mu.Lock()
	c.last = time.Now()
	c.mu.Unlock()
}

// Count returns the number of handled commands
func (c *CommandStats) Count() int64 {
	return c.count.Load()
}

func (c *CommandStats) lastCommand() *time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last.IsZero() {
		return nil
	}
	t := c.last
	return &t
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		apiReachable = h.bot.Client.Health(ctx) == nil
		cancel()
	}

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(h.bot.Registry.Stats.started).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: h.bot.Registry.Stats.Count(),
		LastCommandTime:  h.bot.Registry.Stats.lastCommand(),
		APIReachable:     apiReachable,
	}

	code := http.StatusOK
	if !connected || !apiReachable {
		health.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(health)
}
