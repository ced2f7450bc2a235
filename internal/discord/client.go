package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/game"
)

// Client defaults
const (
	defaultClientTimeout = 10 * time.Second
	defaultMaxRetries    = 3
	defaultRetryDelay    = 500 * time.Millisecond
	maxErrorBodyBytes    = 4 * 1024
)

// GameAPI is the part of the game server the bot talks to.
type GameAPI interface {
	GetGame(ctx context.Context, playerID string) (*game.Snapshot, error)
	Click(ctx context.Context, playerID string) (*game.ClickResult, error)
	PurchaseUpgrade(ctx context.Context, playerID string, upgrade domain.Upgrade) (*game.Snapshot, error)
	PrestigeMenu(ctx context.Context, playerID string) (*game.PrestigeMenu, error)
	Prestige(ctx context.Context, playerID string) (*game.Snapshot, error)
	PurchaseUnlock(ctx context.Context, playerID, unlock string) (*game.Snapshot, error)
	Health(ctx context.Context) error
}

// APIError is a non-2xx answer from the game server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.Status, e.Message)
}

// APIClient handles communication with the game HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: defaultClientTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// doRequest performs an HTTP request. Only GET requests are retried: a game
// action that reached the server must not be applied twice.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	maxRetries := 0
	if method == http.MethodGet {
		maxRetries = c.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			if jitter := c.RetryDelay / 5; jitter > 0 {
				delay += rand.N(jitter)
			}
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < 500 || attempt == maxRetries {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call sends the request and decodes a 200 answer into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var errResp struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
		msg = errResp.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

func gamePath(playerID, suffix string) string {
	return "/api/v1/games/" + url.PathEscape(playerID) + suffix
}

// GetGame returns the current state of a player's game
func (c *APIClient) GetGame(ctx context.Context, playerID string) (*game.Snapshot, error) {
	var snap game.Snapshot
	if err := c.call(ctx, http.MethodGet, gamePath(playerID, ""), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Click presses the button once
func (c *APIClient) Click(ctx context.Context, playerID string) (*game.ClickResult, error) {
	var result game.ClickResult
	if err := c.call(ctx, http.MethodPost, gamePath(playerID, "/click"), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PurchaseUpgrade buys one level of the cooldown or button upgrade
func (c *APIClient) PurchaseUpgrade(ctx context.Context, playerID string, upgrade domain.Upgrade) (*game.Snapshot, error) {
	var snap game.Snapshot
	path := gamePath(playerID, "/upgrades/"+url.PathEscape(string(upgrade)))
	if err := c.call(ctx, http.MethodPost, path, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// PrestigeMenu returns the prestige options of a player
func (c *APIClient) PrestigeMenu(ctx context.Context, playerID string) (*game.PrestigeMenu, error) {
	var menu game.PrestigeMenu
	if err := c.call(ctx, http.MethodGet, gamePath(playerID, "/prestige"), nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// Prestige resets progress for prestige points
func (c *APIClient) Prestige(ctx context.Context, playerID string) (*game.Snapshot, error) {
	var snap game.Snapshot
	if err := c.call(ctx, http.MethodPost, gamePath(playerID, "/prestige"), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// PurchaseUnlock buys a prestige tree node
func (c *APIClient) PurchaseUnlock(ctx context.Context, playerID, unlock string) (*game.Snapshot, error) {
	var snap game.Snapshot
	body := map[string]string{"unlock": unlock}
	if err := c.call(ctx, http.MethodPost, gamePath(playerID, "/prestige/unlocks"), body, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Health checks the liveness endpoint of the game server
func (c *APIClient) Health(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/healthz", nil, nil)
}

// apiStatus extracts the HTTP status of an API error, 0 otherwise
func apiStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
