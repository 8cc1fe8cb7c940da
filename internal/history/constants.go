package history

// File configuration
const (
	// FilePermissions is the file permission mode for the history file
	FilePermissions = 0644

	// TimestampLayout renders the session header timestamp
	TimestampLayout = "2006-01-02 15:04:05.000000"
)

// Line formats
const (
	HeaderFormat      = "=== SESSION START - %s ==="
	LostFormat        = "Lost %d %s | Result: %d"
	WonFormat         = "Won %d %s | Result: %d"
	MarkerGameOver    = "=== GAME OVER ==="
	MarkerManualClose = "=== GAME OVER (MANUAL CLOSE) ==="
)

// Log messages
const (
	LogMsgHistoryOpened = "History log opened"
	LogMsgHistoryClosed = "History log closed"
)
