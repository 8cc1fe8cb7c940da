package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	SpinsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsStarted,
			Help: HelpTextSpinsStarted,
		},
	)

	SpinsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsCompleted,
			Help: HelpTextSpinsCompleted,
		},
		[]string{LabelLabel, LabelResult},
	)

	SpinTicks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinTicks,
			Help:    HelpTextSpinTicks,
			Buckets: SpinTickBuckets,
		},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaidOut,
			Help: HelpTextAmountPaidOut,
		},
	)

	Balance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBalance,
			Help: HelpTextBalance,
		},
	)

	SessionsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEnded,
			Help: HelpTextSessionsEnded,
		},
		[]string{LabelReason},
	)

	SessionRounds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionRounds,
			Help: HelpTextSessionRounds,
		},
	)
)
