// Package console is a line-oriented terminal front end for one local game.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/format"
	"github.com/osse101/SimpleIG_Go/internal/game"
)

// Console reads commands and renders the results of one game
type Console struct {
	game game.Service
	out  *printer
}

// Options tune the output
type Options struct {
	Color bool
}

// New creates a console writing to out
func New(svc game.Service, out io.Writer, opts Options) *Console {
	return &Console{
		game: svc,
		out:  &printer{out: out, color: opts.Color},
	}
}

// Watch prints gold bomb notices for this console's player as they happen
func (c *Console) Watch(bus event.Bus) {
	player := c.game.PlayerID()
	bus.Subscribe(event.GameGoldBombExpired, func(_ context.Context, e event.Event) error {
		if e.PlayerID() == player {
			c.out.Warning("The gold bomb fizzled out.")
		}
		return nil
	})
}

// Run executes commands read from in until quit, end of input or ctx is done
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	c.out.Info(MsgWelcome)
	for {
		c.out.Prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case line := <-lines:
			if !c.Execute(ctx, line) {
				c.out.Success(MsgGoodbye)
				return nil
			}
		}
	}
}

// Execute runs one command line. It returns false when the session should end.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case CmdClick:
		c.click(ctx)
	case CmdCooldown:
		c.report(c.game.PurchaseCooldownUpgrade(ctx))
	case CmdButton:
		c.report(c.game.PurchaseButtonUpgrade(ctx))
	case CmdStatus:
		c.status(c.game.Snapshot(ctx))
	case CmdMenu:
		c.menu(c.game.OpenPrestigeMenu(ctx))
	case CmdPrestige:
		snap, err := c.game.Prestige(ctx)
		if c.failed(err) {
			return true
		}
		c.out.Success("Prestiged! You now have %s prestige points.", snap.Display.PrestigePoints)
	case CmdUnlock:
		if len(fields) < 2 {
			c.out.Warning(MsgUnlockUsage)
			return true
		}
		snap, err := c.game.PurchasePrestigeUnlock(ctx, fields[1])
		if c.failed(err) {
			return true
		}
		c.out.Success("Unlocked %s. %s", fields[1], snap.Display.PrestigePointsLabel)
	case CmdHelp:
		c.out.Header("Commands")
		for _, l := range helpLines {
			c.out.Plain("  %s", l)
		}
	case CmdQuit, CmdExit:
		return false
	default:
		c.out.Warning(MsgUnknownCommand, cmd)
	}
	return true
}

func (c *Console) click(ctx context.Context) {
	res, err := c.game.Click(ctx)
	if c.failed(err) {
		return
	}
	if res.GoldBombTriggered {
		c.out.Warning("Gold bomb! Clicks are worth %dx for a while.", domain.GoldBombMultiplier)
	}
	c.out.Success("+%s points. %s", format.Points(res.Gain), res.Display.PointsLabel)
}

func (c *Console) report(snap game.Snapshot, err error) {
	if c.failed(err) {
		return
	}
	c.out.Success("Upgraded. %s", snap.Display.PointsLabel)
	c.out.Plain("  %s", upgradeLine(snap.Display.CooldownUpgradeLabel, snap.Display.CooldownMaxed))
	c.out.Plain("  %s", upgradeLine(snap.Display.ButtonUpgradeLabel, snap.Display.ButtonMaxed))
}

func (c *Console) status(snap game.Snapshot) {
	d := snap.Display
	c.out.Header("Your Game")
	c.out.Plain("%s", d.PointsLabel)
	c.out.Plain("%s", d.PrestigePointsLabel)
	c.out.Plain("Per click: %s", d.ClickGain)
	c.out.Plain("%s", upgradeLine(d.CooldownUpgradeLabel, d.CooldownMaxed))
	c.out.Plain("%s", upgradeLine(d.ButtonUpgradeLabel, d.ButtonMaxed))
	if d.CooldownRemaining != "0" {
		c.out.Plain("Ready in %ss", d.CooldownRemaining)
	} else {
		c.out.Plain("Ready to click")
	}
	if d.GoldBombActive {
		c.out.Warning("Gold bomb active")
	}
	if d.CanPrestige {
		c.out.Info("Prestige available. Type prestige.")
	}
}

func (c *Console) menu(m game.PrestigeMenu) {
	c.out.Header("Prestige Menu")
	c.out.Plain("Prestige Points: %s", m.PrestigePoints.StringFixed(0))
	for _, u := range m.Unlocks {
		mark := "[ ]"
		switch {
		case u.Owned:
			mark = "[x]"
		case u.Affordable:
			mark = "[+]"
		}
		c.out.Plain("%s %-10s %-12s %s PP", mark, u.Unlock, u.Title, u.Cost.StringFixed(0))
	}
	if m.CanPrestige {
		c.out.Info("Prestige available. Type prestige.")
	} else {
		c.out.Plain("Prestige at %s points (you have %s)", format.Points(m.PrestigeThreshold), format.Points(m.Points))
	}
}

// failed prints err and reports whether there was one
func (c *Console) failed(err error) bool {
	if err == nil {
		return false
	}
	if domain.IsRejection(err) {
		c.out.Warning(MsgRejected, err)
	} else {
		c.out.Error(MsgFailed, err)
	}
	return true
}

func upgradeLine(label string, maxed bool) string {
	if maxed {
		return fmt.Sprintf("%s (max)", label)
	}
	return label
}
