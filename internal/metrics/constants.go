package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "speechive_http_requests_total"
	MetricNameHTTPRequestDuration  = "speechive_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "speechive_http_requests_in_flight"

	MetricNameEventsPublished    = "speechive_events_published_total"
	MetricNameEventHandlerErrors = "speechive_event_handler_errors_total"

	MetricNameActivitiesCompleted = "speechive_activities_completed_total"
	MetricNameDaysCompleted       = "speechive_days_completed_total"
	MetricNameBadgesClaimed       = "speechive_badges_claimed_total"
	MetricNameHoneyDropsAwarded   = "speechive_honey_drops_awarded_total"
	MetricNameHoneyDropsSpent     = "speechive_honey_drops_spent_total"
	MetricNameVouchersIssued      = "speechive_vouchers_issued_total"
	MetricNameQuotaRejections     = "speechive_quota_rejections_total"
	MetricNameRedemptionsRejected = "speechive_redemptions_rejected_total"
	MetricNameProgressResets      = "speechive_progress_resets_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextEventsPublished    = "Total number of events published by type"
	HelpTextEventHandlerErrors = "Total number of event handler errors by type"

	HelpTextActivitiesCompleted = "Total number of first-time activity completions"
	HelpTextDaysCompleted       = "Total number of completed challenge days"
	HelpTextBadgesClaimed       = "Total number of badge claims"
	HelpTextHoneyDropsAwarded   = "Total honey drops credited"
	HelpTextHoneyDropsSpent     = "Total honey drops debited"
	HelpTextVouchersIssued      = "Total number of vouchers issued"
	HelpTextQuotaRejections     = "Total number of Start attempts refused by the daily quota"
	HelpTextRedemptionsRejected = "Total number of rejected redemption attempts"
	HelpTextProgressResets      = "Total number of full progress resets"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCategory = "category"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
