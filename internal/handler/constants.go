package handler

import "time"

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// SnapshotTimeout bounds how long a request waits for the game loop
const SnapshotTimeout = 2 * time.Second

// User-facing error messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgSessionEnded       = "session has ended"
	ErrMsgSnapshotFailed     = "session state unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgSnapshotFailed  = "Failed to read session snapshot"
	LogMsgReadinessFailed = "Readiness check failed"
)
