package server

import "time"

// Route paths
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathEvents  = "/events"
	PathAPIV1   = "/api/v1"
	PathState   = "/state"
)

// HTTP server timeouts. WriteTimeout stays unset so SSE streams stay open.
const (
	ReadHeaderTimeout = 5 * time.Second
	IdleTimeout       = 60 * time.Second
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Status server starting"
	LogMsgServerStopped    = "Status server stopped"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// QuietPaths are polled often and skipped by request logging
var QuietPaths = []string{
	PathHealthz,
	PathReadyz,
	PathMetrics,
	PathEvents,
}
