package console

// Prompt is printed before every command
const Prompt = "> "

// Commands
const (
	CmdClick    = "click"
	CmdCooldown = "cooldown"
	CmdButton   = "button"
	CmdMenu     = "menu"
	CmdPrestige = "prestige"
	CmdUnlock   = "unlock"
	CmdStatus   = "status"
	CmdHelp     = "help"
	CmdQuit     = "quit"
	CmdExit     = "exit"
)

var helpLines = []string{
	"click            press the button",
	"cooldown         buy a cooldown upgrade",
	"button           buy a button upgrade",
	"status           show your game",
	"menu             show the prestige menu",
	"prestige         reset for prestige points",
	"unlock <name>    buy a prestige unlock (twoX, oneSecond, fiveX, goldBomb)",
	"quit             save and leave",
}

// Messages
const (
	MsgWelcome        = "SimpleIG. Type help for the list of commands."
	MsgUnknownCommand = "Unknown command %q. Type help for the list of commands."
	MsgUnlockUsage    = "Usage: unlock <name>"
	MsgRejected       = "Not yet: %v"
	MsgFailed         = "Something went wrong: %v"
	MsgGoodbye        = "Progress saved. Bye!"
)
