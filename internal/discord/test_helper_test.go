package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake game API and a Discord session whose HTTP calls are captured
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu       sync.Mutex
	edits    []discordgo.WebhookEdit
	messages []discordgo.MessageSend
	deferred int
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

func (c *TestContext) capture(req *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case req.Method == http.MethodPatch:
		var body discordgo.WebhookEdit
		if json.NewDecoder(req.Body).Decode(&body) == nil {
			c.edits = append(c.edits, body)
		}
	case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
		c.deferred++
	case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/messages"):
		var body discordgo.MessageSend
		if json.NewDecoder(req.Body).Decode(&body) == nil {
			c.messages = append(c.messages, body)
		}
	}
}

// LastEmbed returns the embed of the last edited response
func (c *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.edits, "no response edit captured")
	last := c.edits[len(c.edits)-1]
	require.NotNil(t, last.Embeds, "response has no embeds")
	require.NotEmpty(t, *last.Embeds)
	return (*last.Embeds)[0]
}

// LastContent returns the text of the last edited response
func (c *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.edits, "no response edit captured")
	last := c.edits[len(c.edits)-1]
	require.NotNil(t, last.Content, "response has no content")
	return *last.Content
}

// Messages returns the channel messages sent so far
func (c *TestContext) Messages() []discordgo.MessageSend {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]discordgo.MessageSend(nil), c.messages...)
}

// Deferred returns the number of interaction callbacks sent
func (c *TestContext) Deferred() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deferred
}

// NewInteraction builds a guild slash command interaction
func NewInteraction(name, userID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

// StringOption builds a string command option
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// WriteJSON writes data as a JSON success response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteAPIError writes an error body the way the game server does
func WriteAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
