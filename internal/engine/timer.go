package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// StartTimer begins a session against one activity. Exactly one session may
// run at a time. A Start is refused while the daily quota is spent, whether
// or not the target activity is already completed.
func (s *service) StartTimer(ctx context.Context, category domain.Category, day int, activityID string) (*Session, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		return nil, domain.ErrTimerAlreadyRunning
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}

	act := s.log.FindActivity(category, day, activityID)
	if act == nil {
		return nil, fmt.Errorf("%w: %s/%d/%s", domain.ErrUnknownActivity, category, day, activityID)
	}

	now := s.clk.Now()
	if done := s.completedOn(now); done >= domain.DailyActivityQuota {
		s.publish(ctx, event.NewQuotaExceededEvent(category, day, activityID, done))
		log.Info("start refused by daily quota", "completed_today", done)
		return nil, domain.ErrQuotaExceeded
	}

	s.session = &Session{
		Category:   category,
		Day:        day,
		ActivityID: activityID,
		Title:      act.Title,
		StartedAt:  now,
	}

	log.Info("timer started",
		"category", category, "day", day, "activity", activityID)
	sess := *s.session
	return &sess, nil
}

// StopTimer ends the running session, accrues its duration onto the
// activity, and settles first-completion rewards.
func (s *service) StopTimer(ctx context.Context) (*StopResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, domain.ErrTimerNotRunning
	}

	elapsed := int64(math.Round(s.clk.Since(s.session.StartedAt).Seconds()))
	if elapsed < 0 {
		elapsed = 0
	}
	if s.minSessionSeconds > 0 && elapsed < s.minSessionSeconds {
		// Session stays running; the caregiver keeps timing.
		return nil, fmt.Errorf("%w: %ds elapsed", domain.ErrSessionTooShort, elapsed)
	}

	sess := s.session
	s.session = nil

	act := s.log.FindActivity(sess.Category, sess.Day, sess.ActivityID)
	if act == nil {
		// Activity vanished mid-session, only possible across a reset.
		log.Warn("stop target missing from log",
			"category", sess.Category, "day", sess.Day, "activity", sess.ActivityID)
		return nil, fmt.Errorf("%w: %s/%d/%s", domain.ErrUnknownActivity, sess.Category, sess.Day, sess.ActivityID)
	}

	act.Duration += elapsed

	result := &StopResult{
		Category:       sess.Category,
		Day:            sess.Day,
		ActivityID:     sess.ActivityID,
		Title:          act.Title,
		ElapsedSeconds: elapsed,
		TotalSeconds:   act.Duration,
	}

	if !act.Completed {
		now := s.clk.Now()
		act.Completed = true
		act.CompletionDate = &now
		act.HoneyDropsEarned = domain.ActivityReward

		result.FirstCompletion = true
		result.Reward = domain.ActivityReward
		result.Balance = s.credit(ctx, domain.ActivityReward)

		s.publish(ctx, event.NewActivityCompletedEvent(
			sess.Category, sess.Day, sess.ActivityID, act.Title, domain.ActivityReward, now))

		if ch := s.log.Challenge(sess.Category); ch != nil {
			if d := ch.Day(sess.Day); d != nil && d.AllCompleted() {
				result.DayCompleted = true
				s.publish(ctx, event.NewDayCompletedEvent(sess.Category, sess.Day))
			}
		}
	} else {
		result.Balance = s.profile.HoneyDrops
	}

	s.saveRecord(ctx, store.KeyCompletionLog, s.log)

	log.Info("timer stopped",
		"category", sess.Category, "day", sess.Day, "activity", sess.ActivityID,
		"elapsed_seconds", elapsed,
		"first_completion", result.FirstCompletion,
		"day_completed", result.DayCompleted)
	return result, nil
}

// ActiveSession returns a copy of the running session and its live elapsed
// seconds, or false when the timer is idle.
func (s *service) ActiveSession() (*Session, int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, 0, false
	}
	elapsed := int64(math.Round(s.clk.Since(s.session.StartedAt).Seconds()))
	if elapsed < 0 {
		elapsed = 0
	}
	sess := *s.session
	return &sess, elapsed, true
}
