package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   GameAPI
	AppID    string
	Registry *CommandRegistry

	notificationChannelID string
}

// Config holds the bot configuration
type Config struct {
	Token                 string
	AppID                 string
	APIURL                string
	APIKey                string
	NotificationChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:               s,
		Client:                NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:                 cfg.AppID,
		Registry:              NewCommandRegistry(),
		notificationChannelID: cfg.NotificationChannelID,
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", "error", err)
	}
}

// SendNotification posts an embed to the notification channel.
// It is a no-op when no channel is configured.
func (b *Bot) SendNotification(embed *discordgo.MessageEmbed) error {
	if b.notificationChannelID == "" {
		return nil
	}
	if _, err := b.Session.ChannelMessageSendEmbed(b.notificationChannelID, embed); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
