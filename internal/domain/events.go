package domain

// Event type constants used across the application for event bus
// subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "activity.completed")
const (
	// EventTypeActivityCompleted is published on the first completion of an activity
	EventTypeActivityCompleted = "activity.completed"

	// EventTypeDayCompleted is published when the Stop that completed an
	// activity also completed its whole (category, day)
	EventTypeDayCompleted = "day.completed"

	// EventTypeBadgeClaimed is published on the first claim of a day badge
	EventTypeBadgeClaimed = "badge.claimed"

	// EventTypeCurrencyChanged is published whenever the honey-drop balance moves
	EventTypeCurrencyChanged = "currency.changed"

	// EventTypeQuotaExceeded is published when a Start is rejected by the daily quota gate
	EventTypeQuotaExceeded = "quota.exceeded"

	// EventTypeRedemptionRejected is published when a Redeem is rejected
	EventTypeRedemptionRejected = "redemption.rejected"

	// EventTypeVoucherIssued is published when a redemption succeeds
	EventTypeVoucherIssued = "voucher.issued"

	// EventTypeProgressReset is published after the atomic reset-all operation
	EventTypeProgressReset = "progress.reset"
)
