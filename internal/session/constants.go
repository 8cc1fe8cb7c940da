package session

// Player-facing notices
const (
	NoticeGameOver = "You have no money left. Game over."
)

// Log messages
const (
	LogMsgBetRejected      = "Bet rejected"
	LogMsgBetIgnored       = "Bet ignored while spinning"
	LogMsgSpinStarted      = "Spin started"
	LogMsgSpinCompleted    = "Spin completed"
	LogMsgTickFailed       = "Spin tick failed"
	LogMsgHistoryFailed    = "Failed to write history"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgDisplayClose     = "Failed to close display"
	LogMsgSessionEnded     = "Session ended"
	LogMsgSessionCloseNoop = "Session already ended"
)
