package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
)

// EventSchemaVersion is the version stamped on every event envelope.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Engine event types, mirrored from domain so subscribers can use either.
const (
	ActivityCompleted  Type = domain.EventTypeActivityCompleted
	DayCompleted       Type = domain.EventTypeDayCompleted
	BadgeClaimed       Type = domain.EventTypeBadgeClaimed
	CurrencyChanged    Type = domain.EventTypeCurrencyChanged
	QuotaExceeded      Type = domain.EventTypeQuotaExceeded
	RedemptionRejected Type = domain.EventTypeRedemptionRejected
	VoucherIssued      Type = domain.EventTypeVoucherIssued
	ProgressReset      Type = domain.EventTypeProgressReset
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// ActivityCompletedPayloadV1 is the typed payload for first-time activity completions
type ActivityCompletedPayloadV1 struct {
	Category   domain.Category `json:"category"`
	Day        int             `json:"day"`
	ActivityID string          `json:"activity_id"`
	Title      string          `json:"title"`
	Reward     int             `json:"reward"`
	Timestamp  int64           `json:"timestamp"`
}

// DayCompletedPayloadV1 is the typed payload for day completion events
type DayCompletedPayloadV1 struct {
	Category domain.Category `json:"category"`
	Day      int             `json:"day"`
}

// BadgeClaimedPayloadV1 is the typed payload for badge claim events
type BadgeClaimedPayloadV1 struct {
	Day    int `json:"day"`
	Reward int `json:"reward"`
}

// CurrencyChangedPayloadV1 is the typed payload for balance movements
type CurrencyChangedPayloadV1 struct {
	Delta      int `json:"delta"`
	NewBalance int `json:"new_balance"`
}

// QuotaExceededPayloadV1 is the typed payload for rejected Start attempts
type QuotaExceededPayloadV1 struct {
	Category       domain.Category `json:"category"`
	Day            int             `json:"day"`
	ActivityID     string          `json:"activity_id"`
	CompletedToday int             `json:"completed_today"`
}

// RedemptionRejectedPayloadV1 is the typed payload for rejected redemptions
type RedemptionRejectedPayloadV1 struct {
	Reason  string `json:"reason"`
	Balance int    `json:"balance"`
}

// VoucherIssuedPayloadV1 is the typed payload for successful redemptions
type VoucherIssuedPayloadV1 struct {
	Code   string `json:"code"`
	Amount int    `json:"amount"`
}

// Type-safe event constructors

// NewActivityCompletedEvent creates an event for a first-time activity completion
func NewActivityCompletedEvent(category domain.Category, day int, activityID, title string, reward int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActivityCompleted,
		Payload: ActivityCompletedPayloadV1{
			Category:   category,
			Day:        day,
			ActivityID: activityID,
			Title:      title,
			Reward:     reward,
			Timestamp:  at.Unix(),
		},
	}
}

// NewDayCompletedEvent creates an event for a completed (category, day)
func NewDayCompletedEvent(category domain.Category, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayCompleted,
		Payload: DayCompletedPayloadV1{Category: category, Day: day},
	}
}

// NewBadgeClaimedEvent creates an event for a first-time badge claim
func NewBadgeClaimedEvent(day, reward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeClaimed,
		Payload: BadgeClaimedPayloadV1{Day: day, Reward: reward},
	}
}

// NewCurrencyChangedEvent creates an event for a balance movement
func NewCurrencyChangedEvent(delta, newBalance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CurrencyChanged,
		Payload: CurrencyChangedPayloadV1{Delta: delta, NewBalance: newBalance},
	}
}

// NewQuotaExceededEvent creates an event for a Start rejected by the quota gate
func NewQuotaExceededEvent(category domain.Category, day int, activityID string, completedToday int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuotaExceeded,
		Payload: QuotaExceededPayloadV1{
			Category:       category,
			Day:            day,
			ActivityID:     activityID,
			CompletedToday: completedToday,
		},
	}
}

// NewRedemptionRejectedEvent creates an event for a rejected redemption
func NewRedemptionRejectedEvent(reason string, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RedemptionRejected,
		Payload: RedemptionRejectedPayloadV1{Reason: reason, Balance: balance},
	}
}

// NewVoucherIssuedEvent creates an event for a successful redemption
func NewVoucherIssuedEvent(code string, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VoucherIssued,
		Payload: VoucherIssuedPayloadV1{Code: code, Amount: amount},
	}
}

// NewProgressResetEvent creates an event for the atomic reset-all operation
func NewProgressResetEvent() Event {
	return Event{Version: EventSchemaVersion, Type: ProgressReset}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; handler errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d event handler(s) failed for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
