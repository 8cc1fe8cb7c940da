package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel.
	// A spin emits up to 100 frames, so one spin fits without drops.
	BroadcastBufferSize = 128

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 128

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	EventTypeSpinStarted   = "spin.started"
	EventTypeSpinFrame     = "spin.frame"
	EventTypeSpinCompleted = "spin.completed"
	EventTypeSessionEnded  = "session.ended"

	// EventTypeConnected is the first message a client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes selects a comma separated subset of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgUnexpectedPayload  = "Unexpected event payload type"
	ErrMsgStreamUnsupported  = "SSE not supported"
)
