package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/format"
	"github.com/osse101/SimpleIG_Go/internal/game"
)

// Option names
const (
	optionUpgradeType = "type"
	optionUnlockName  = "name"
)

var titleCaser = cases.Title(language.English)

// GameCommands returns the factories of every game command
func GameCommands() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		ClickCommand,
		UpgradeCommand,
		StatusCommand,
		PrestigeCommand,
		UnlocksCommand,
		UnlockCommand,
	}
}

// ClickCommand presses the button once
func ClickCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "click",
		Description: "Press the button to earn points",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			result, err := client.Click(ctx, playerID)
			if err != nil {
				return nil, err
			}
			return clickEmbed(result), nil
		}, ResponseConfig{Title: "👆 Click!", Color: ColorSuccess})
	}

	return cmd, handler
}

// UpgradeCommand buys one level of a point upgrade
func UpgradeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "upgrade",
		Description: "Buy a cooldown or button upgrade with points",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionUpgradeType,
				Description: "Which upgrade to buy",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Cooldown", Value: string(domain.UpgradeCooldown)},
					{Name: "Button", Value: string(domain.UpgradeButton)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client GameAPI) {
		upgrade := domain.Upgrade(stringOption(i, optionUpgradeType))
		handleEmbedResponse(s, i, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			snap, err := client.PurchaseUpgrade(ctx, playerID, upgrade)
			if err != nil {
				return nil, err
			}
			embed := statusEmbed(snap)
			embed.Description = fmt.Sprintf("Bought a %s upgrade.", upgrade)
			return embed, nil
		}, ResponseConfig{Title: "⬆️ " + titleCaser.String(string(upgrade)) + " Upgrade", Color: ColorSuccess})
	}

	return cmd, handler
}

// StatusCommand shows the current game
func StatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "status",
		Description: "Show your points, upgrades and cooldown",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			snap, err := client.GetGame(ctx, playerID)
			if err != nil {
				return nil, err
			}
			return statusEmbed(snap), nil
		}, ResponseConfig{Title: "📊 Your Game", Color: ColorInfo})
	}

	return cmd, handler
}

// PrestigeCommand trades all progress for prestige points
func PrestigeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "prestige",
		Description: "Reset your progress for prestige points (needs 10,000 points)",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			snap, err := client.Prestige(ctx, playerID)
			if err != nil {
				return nil, err
			}
			embed := statusEmbed(snap)
			embed.Description = fmt.Sprintf("You now have **%s** prestige points.", snap.Display.PrestigePoints)
			return embed, nil
		}, ResponseConfig{Title: "✨ Prestige!", Color: ColorPrestige})
	}

	return cmd, handler
}

// UnlocksCommand opens the prestige menu
func UnlocksCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "unlocks",
		Description: "Show the prestige unlocks and their prices",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client GameAPI) {
		handleEmbedResponse(s, i, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			menu, err := client.PrestigeMenu(ctx, playerID)
			if err != nil {
				return nil, err
			}
			return menuEmbed(menu), nil
		}, ResponseConfig{Title: "✨ Prestige Menu", Color: ColorPrestige})
	}

	return cmd, handler
}

// UnlockCommand buys a prestige unlock
func UnlockCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Unlocks))
	for _, u := range domain.Unlocks {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", titleCaser.String(u.Title()), u.Cost()),
			Value: string(u),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "unlock",
		Description: "Buy a prestige unlock with prestige points",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionUnlockName,
				Description: "Which unlock to buy",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client GameAPI) {
		name := stringOption(i, optionUnlockName)
		handleEmbedResponse(s, i, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			snap, err := client.PurchaseUnlock(ctx, playerID, name)
			if err != nil {
				return nil, err
			}
			embed := statusEmbed(snap)
			if u, err := domain.ParseUnlock(name); err == nil {
				embed.Description = fmt.Sprintf("Unlocked **%s**.", titleCaser.String(u.Title()))
			}
			return embed, nil
		}, ResponseConfig{Title: "🔓 Unlock", Color: ColorPrestige})
	}

	return cmd, handler
}

func clickEmbed(result *game.ClickResult) *discordgo.MessageEmbed {
	embed := statusEmbed(&result.Snapshot)
	embed.Title = ""
	embed.Description = fmt.Sprintf("+**%s** points", format.Points(result.Gain))
	if result.GoldBombTriggered {
		embed.Title = "💣 Gold Bomb!"
		embed.Color = ColorGoldBomb
		embed.Description += fmt.Sprintf("\nEvery click is worth %dx for a while!", domain.GoldBombMultiplier)
	}
	return embed
}

func statusEmbed(snap *game.Snapshot) *discordgo.MessageEmbed {
	d := snap.Display
	fields := []*discordgo.MessageEmbedField{
		{Name: "Points", Value: d.Points, Inline: true},
		{Name: "Prestige Points", Value: d.PrestigePoints, Inline: true},
		{Name: "Per Click", Value: d.ClickGain, Inline: true},
		{Name: "Cooldown", Value: upgradeValue(d.CooldownUpgradeLabel, d.CooldownMaxed), Inline: false},
		{Name: "Button", Value: upgradeValue(d.ButtonUpgradeLabel, d.ButtonMaxed), Inline: false},
	}
	if d.CooldownRemaining != "0" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Ready In", Value: d.CooldownRemaining + "s", Inline: true})
	}
	if d.GoldBombActive {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Gold Bomb", Value: "💣 Active", Inline: true})
	}
	if d.CanPrestige {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Prestige", Value: "✨ Available! Use /prestige", Inline: false})
	}
	return &discordgo.MessageEmbed{Fields: fields}
}

func upgradeValue(label string, maxed bool) string {
	if maxed {
		return label + " (max)"
	}
	return label
}

func menuEmbed(menu *game.PrestigeMenu) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, opt := range menu.Unlocks {
		mark := "▫️"
		switch {
		case opt.Owned:
			mark = "✅"
		case opt.Affordable:
			mark = "🟢"
		}
		fmt.Fprintf(&b, "%s **%s** `%s` - %s PP\n", mark, titleCaser.String(opt.Title), opt.Unlock, opt.Cost)
	}

	prestige := fmt.Sprintf("%s / %s points", format.Points(menu.Points), format.Points(menu.PrestigeThreshold))
	if menu.CanPrestige {
		prestige = "✨ Available! Use /prestige"
	}

	return &discordgo.MessageEmbed{
		Description: b.String(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Prestige Points", Value: menu.PrestigePoints.StringFixed(0), Inline: true},
			{Name: "Prestige", Value: prestige, Inline: true},
		},
	}
}
