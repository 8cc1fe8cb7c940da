package console

// Wheel strip geometry
const (
	// StripRadius is how many segments are drawn on each side of the pointer
	StripRadius = 7

	// StripCacheSize bounds the rendered strip cache; one entry per pointer index
	StripCacheSize = 64
)

// ANSI escape sequences
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiClearLine = "\x1b[2K"
	ansiFgFormat  = "\x1b[38;2;%d;%d;%dm"
	ansiBgFormat  = "\x1b[48;2;%d;%d;%dm"
)

// Result colors
const (
	ColorWin  = "#2ecc71"
	ColorLoss = "#e74c3c"
	ColorText = "#ffffff"
)

// Player-facing text
const (
	MsgBalanceFormat    = "Balance: %s"
	MsgBetPrompt        = " | Enter your bet (q to quit): "
	MsgWonFormat        = "Won %s | Result: %d"
	MsgLostFormat       = "Lost %s | Result: %d"
	MsgErrorPrefix      = "Error: "
	MsgSessionClosed    = "Session closed."
	MsgBalancePrompt    = "Enter your initial balance (min %s, max %s, default %s): "
	MsgBalanceDefaulted = "Invalid or out of range amount, starting with %s."
)

// Commands that close the session from the bet prompt
var QuitCommands = []string{"q", "quit", "exit"}
