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

// Business Metrics
var (
	ActivitiesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesCompleted,
			Help: HelpTextActivitiesCompleted,
		},
		[]string{LabelCategory},
	)

	DaysCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDaysCompleted,
			Help: HelpTextDaysCompleted,
		},
		[]string{LabelCategory},
	)

	BadgesClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBadgesClaimed,
			Help: HelpTextBadgesClaimed,
		},
	)

	HoneyDropsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHoneyDropsAwarded,
			Help: HelpTextHoneyDropsAwarded,
		},
	)

	HoneyDropsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHoneyDropsSpent,
			Help: HelpTextHoneyDropsSpent,
		},
	)

	VouchersIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVouchersIssued,
			Help: HelpTextVouchersIssued,
		},
	)

	QuotaRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotaRejections,
			Help: HelpTextQuotaRejections,
		},
		[]string{LabelCategory},
	)

	RedemptionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRedemptionsRejected,
			Help: HelpTextRedemptionsRejected,
		},
	)

	ProgressResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProgressResets,
			Help: HelpTextProgressResets,
		},
	)
)
