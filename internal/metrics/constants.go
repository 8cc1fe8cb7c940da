package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "wheel_http_requests_total"
	MetricNameHTTPRequestDuration  = "wheel_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "wheel_http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "wheel_events_published_total"
	MetricNameEventHandlerErrors = "wheel_event_handler_errors_total"
)

// Game metric names
const (
	MetricNameSpinsStarted   = "wheel_spins_started_total"
	MetricNameSpinsCompleted = "wheel_spins_completed_total"
	MetricNameSpinTicks      = "wheel_spin_ticks"
	MetricNameAmountWagered  = "wheel_amount_wagered_total"
	MetricNameAmountPaidOut  = "wheel_amount_paid_out_total"
	MetricNameBalance        = "wheel_balance"
	MetricNameSessionsEnded  = "wheel_sessions_ended_total"
	MetricNameSessionRounds  = "wheel_session_rounds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of status server requests"
	HelpTextHTTPRequestDuration  = "Status server request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of status server requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextSpinsStarted   = "Total number of spins started"
	HelpTextSpinsCompleted = "Total number of spins settled, by landing label and result"
	HelpTextSpinTicks      = "Animation ticks per spin"
	HelpTextAmountWagered  = "Total amount staked"
	HelpTextAmountPaidOut  = "Total amount paid out on winning spins"
	HelpTextBalance        = "Player balance after the latest settled spin"
	HelpTextSessionsEnded  = "Total number of sessions ended, by reason"
	HelpTextSessionRounds  = "Spins played in the last ended session"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelLabel  = "label"
	LabelResult = "result"
	LabelReason = "reason"
)

// Result label values
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SpinTickBuckets covers the 60..100 tick range of a spin
var SpinTickBuckets = []float64{60, 70, 80, 90, 100}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
