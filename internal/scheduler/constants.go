package scheduler

// InboxBufferSize is the buffer size for functions posted to the loop
const InboxBufferSize = 64

// Log messages
const (
	LogMsgLoopStarted   = "Event loop started"
	LogMsgLoopStopped   = "Event loop stopped"
	LogMsgTimersDropped = "Cancelled pending timers on stop"
)
