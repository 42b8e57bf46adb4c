// Package engine owns all mutable program state: the completion log, the
// single timer session, the claimed badge set, and the caregiver profile
// with its honey-drop balance. Every mutation goes through the service
// mutex, is persisted whole, and is announced on the event bus.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kiwiorbit/speechive-7.1/internal/catalog"
	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// Session is the single active timed practice session.
type Session struct {
	Category   domain.Category `json:"category"`
	Day        int             `json:"day"`
	ActivityID string          `json:"activity_id"`
	Title      string          `json:"title"`
	StartedAt  time.Time       `json:"started_at"`
}

// StopResult reports what a Stop did.
type StopResult struct {
	Category        domain.Category `json:"category"`
	Day             int             `json:"day"`
	ActivityID      string          `json:"activity_id"`
	Title           string          `json:"title"`
	ElapsedSeconds  int64           `json:"elapsed_seconds"`
	TotalSeconds    int64           `json:"total_seconds"`
	FirstCompletion bool            `json:"first_completion"`
	DayCompleted    bool            `json:"day_completed"`
	Reward          int             `json:"reward"`
	Balance         int             `json:"balance"`
}

// Service defines the interface for engine operations
type Service interface {
	StartTimer(ctx context.Context, category domain.Category, day int, activityID string) (*Session, error)
	StopTimer(ctx context.Context) (*StopResult, error)
	ActiveSession() (*Session, int64, bool)

	CompletionLog() domain.CompletionLog
	CompletedToday(at time.Time) int

	BadgeStatuses() []domain.BadgeStatus
	ClaimBadge(ctx context.Context, day int) (int, error)
	Redeem(ctx context.Context) (*domain.Voucher, error)

	Profile() (domain.Profile, bool)
	SaveProfile(ctx context.Context, p domain.Profile) error
	Balance() int

	Reset(ctx context.Context) error
}

type service struct {
	mu sync.Mutex

	store store.Store
	bus   event.Bus
	clk   clock.Clock

	template domain.CompletionLog

	log        domain.CompletionLog
	badges     domain.ClaimedBadgeSet
	profile    domain.Profile
	profileSet bool
	session    *Session

	minSessionSeconds int64
	newVoucherCode    func() string
}

// Option configures the engine service.
type Option func(*service)

// WithMinSessionSeconds sets the minimum session length Stop accepts.
// Zero disables the floor.
func WithMinSessionSeconds(seconds int) Option {
	return func(s *service) { s.minSessionSeconds = int64(seconds) }
}

// WithVoucherCodeFunc overrides voucher code generation for tests.
func WithVoucherCodeFunc(fn func() string) Option {
	return func(s *service) { s.newVoucherCode = fn }
}

// NewService creates the engine service, loading persisted state. Absent
// records fall back to defaults: the catalog template, an empty badge set,
// and no profile.
func NewService(ctx context.Context, st store.Store, bus event.Bus, clk clock.Clock, cat *catalog.Config, opts ...Option) (Service, error) {
	s := &service{
		store:          st,
		bus:            bus,
		clk:            clk,
		template:       cat.Template(),
		newVoucherCode: NewVoucherCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.loadState(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadState(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var persisted domain.CompletionLog
	switch err := store.GetJSON(ctx, s.store, store.KeyCompletionLog, &persisted); {
	case err == nil:
		s.log = persisted
	case errors.Is(err, domain.ErrKeyNotFound):
		s.log = s.template.Clone()
	default:
		return fmt.Errorf("load completion log: %w", err)
	}

	var badges domain.ClaimedBadgeSet
	switch err := store.GetJSON(ctx, s.store, store.KeyClaimedBadges, &badges); {
	case err == nil:
		s.badges = badges
	case errors.Is(err, domain.ErrKeyNotFound):
		s.badges = nil
	default:
		return fmt.Errorf("load claimed badges: %w", err)
	}

	var profile domain.Profile
	switch err := store.GetJSON(ctx, s.store, store.KeyProfile, &profile); {
	case err == nil:
		s.profile = profile
		s.profileSet = true
	case errors.Is(err, domain.ErrKeyNotFound):
	default:
		return fmt.Errorf("load profile: %w", err)
	}

	log.Info("engine state loaded",
		"profile_present", s.profileSet,
		"claimed_badges", len(s.badges),
		"balance", s.profile.HoneyDrops)
	return nil
}

// saveRecord persists one record. Failures are logged, never fatal: the
// in-memory state stays authoritative for the rest of the process.
func (s *service) saveRecord(ctx context.Context, key string, value any) {
	if err := store.SetJSON(ctx, s.store, key, value); err != nil {
		logger.FromContext(ctx).Warn("failed to persist record", "key", key, "error", err)
	}
}

// publish fires an event, logging handler failures.
func (s *service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("event handler failure", "type", e.Type, "error", err)
	}
}

// CompletionLog returns a deep copy of the live log.
func (s *service) CompletionLog() domain.CompletionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Clone()
}

// Profile returns the caregiver profile and whether one has been saved.
func (s *service) Profile() (domain.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile, s.profileSet
}

// SaveProfile stores caregiver details. The honey-drop balance is owned by
// the engine and survives profile edits untouched.
func (s *service) SaveProfile(ctx context.Context, p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.HoneyDrops = s.profile.HoneyDrops
	s.profile = p
	s.profileSet = true
	s.saveRecord(ctx, store.KeyProfile, s.profile)

	logger.FromContext(ctx).Info("profile saved", "caregiver", p.CaregiverName)
	return nil
}

func (s *service) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.HoneyDrops
}

// credit moves the balance and announces the change. Caller holds the lock.
func (s *service) credit(ctx context.Context, delta int) int {
	s.profile.HoneyDrops += delta
	s.saveRecord(ctx, store.KeyProfile, s.profile)
	s.publish(ctx, event.NewCurrencyChangedEvent(delta, s.profile.HoneyDrops))
	return s.profile.HoneyDrops
}
