package metrics

import (
	"context"

	"github.com/kiwiorbit/speechive-7.1/internal/event"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ActivityCompleted,
		event.DayCompleted,
		event.BadgeClaimed,
		event.CurrencyChanged,
		event.QuotaExceeded,
		event.RedemptionRejected,
		event.VoucherIssued,
		event.ProgressReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ActivityCompleted:
		if p, ok := evt.Payload.(event.ActivityCompletedPayloadV1); ok {
			ActivitiesCompleted.WithLabelValues(string(p.Category)).Inc()
		}

	case event.DayCompleted:
		if p, ok := evt.Payload.(event.DayCompletedPayloadV1); ok {
			DaysCompleted.WithLabelValues(string(p.Category)).Inc()
		}

	case event.BadgeClaimed:
		BadgesClaimed.Inc()

	case event.CurrencyChanged:
		if p, ok := evt.Payload.(event.CurrencyChangedPayloadV1); ok {
			if p.Delta >= 0 {
				HoneyDropsAwarded.Add(float64(p.Delta))
			} else {
				HoneyDropsSpent.Add(float64(-p.Delta))
			}
		}

	case event.QuotaExceeded:
		if p, ok := evt.Payload.(event.QuotaExceededPayloadV1); ok {
			QuotaRejections.WithLabelValues(string(p.Category)).Inc()
		}

	case event.RedemptionRejected:
		RedemptionsRejected.Inc()

	case event.VoucherIssued:
		VouchersIssued.Inc()

	case event.ProgressReset:
		ProgressResets.Inc()
	}

	return nil
}
