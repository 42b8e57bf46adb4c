// Package notification keeps the persisted caregiver notification feed.
// The feed is written by event-bus subscriptions, never by direct calls
// from the engine, so it stays decoupled from reward settlement.
package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// Notification kinds.
const (
	KindWelcome  = "welcome"
	KindActivity = "activity"
	KindDay      = "day"
	KindBadge    = "badge"
)

// Service defines the interface for the notification feed
type Service interface {
	List() []domain.Notification
	MarkAllRead(ctx context.Context) error
	ClearAll(ctx context.Context) error
	Subscribe(bus event.Bus)
}

type service struct {
	mu     sync.Mutex
	store  store.Store
	clk    clock.Clock
	feed   []domain.Notification
	nextID int64
}

// NewService creates the notification service, loading the persisted feed.
// An absent record seeds the built-in welcome entries.
func NewService(ctx context.Context, st store.Store, clk clock.Clock) (Service, error) {
	s := &service{store: st, clk: clk}

	var feed []domain.Notification
	switch err := store.GetJSON(ctx, st, store.KeyNotifications, &feed); {
	case err == nil:
		s.feed = feed
	case errors.Is(err, domain.ErrKeyNotFound):
		s.seedLocked(ctx)
	default:
		return nil, fmt.Errorf("load notifications: %w", err)
	}

	for _, n := range s.feed {
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}
	return s, nil
}

// seedLocked installs the three welcome entries and persists them.
func (s *service) seedLocked(ctx context.Context) {
	now := s.clk.Now()
	texts := []string{
		"Welcome to Speechive! We're glad you're here.",
		`Tap on "Strategies" from the home screen to begin your first 30-day challenge.`,
		"Complete activities to earn Honey Drops and unlock badges!",
	}
	s.feed = s.feed[:0]
	for i, text := range texts {
		s.feed = append(s.feed, domain.Notification{
			ID:        int64(i + 1),
			Text:      text,
			Kind:      KindWelcome,
			CreatedAt: now,
		})
	}
	s.nextID = int64(len(texts) + 1)
	s.saveLocked(ctx)
}

func (s *service) saveLocked(ctx context.Context) {
	if err := store.SetJSON(ctx, s.store, store.KeyNotifications, s.feed); err != nil {
		logger.FromContext(ctx).Warn("failed to persist notifications", "error", err)
	}
}

// pushLocked prepends one entry; newest entries sit at the front.
func (s *service) pushLocked(ctx context.Context, text, kind string) {
	n := domain.Notification{
		ID:        s.nextID,
		Text:      text,
		Kind:      kind,
		CreatedAt: s.clk.Now(),
	}
	s.nextID++
	s.feed = append([]domain.Notification{n}, s.feed...)
	s.saveLocked(ctx)
}

// List returns the feed newest first.
func (s *service) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}

// MarkAllRead marks every entry read.
func (s *service) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.feed {
		s.feed[i].Read = true
	}
	s.saveLocked(ctx)
	return nil
}

// ClearAll empties the feed. Unlike a full reset this does not reseed.
func (s *service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feed = []domain.Notification{}
	s.saveLocked(ctx)
	return nil
}

// Subscribe registers the feed's event handlers on the bus.
func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.ActivityCompleted, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.ActivityCompletedPayloadV1)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", e.Type)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pushLocked(ctx, fmt.Sprintf("'%s' complete! +%d Honey Drops earned.", payload.Title, payload.Reward), KindActivity)
		return nil
	})

	bus.Subscribe(event.DayCompleted, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.DayCompletedPayloadV1)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", e.Type)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pushLocked(ctx, fmt.Sprintf("Day %d complete! You've unlocked a new badge.", payload.Day), KindDay)
		return nil
	})

	bus.Subscribe(event.BadgeClaimed, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(event.BadgeClaimedPayloadV1)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", e.Type)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pushLocked(ctx, fmt.Sprintf("Badge for Day %d claimed! +%d Honey Drops earned.", payload.Day, payload.Reward), KindBadge)
		return nil
	})

	bus.Subscribe(event.ProgressReset, func(ctx context.Context, _ event.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.seedLocked(ctx)
		return nil
	})
}
