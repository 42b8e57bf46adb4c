package engine

import (
	"context"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// Reset wipes everything back to the authored catalog template: completion
// log, claimed badges, profile and balance, any running session, and every
// persisted record. Subscribers react to the reset event (the notification
// feed reseeds its welcome entries).
func (s *service) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = s.template.Clone()
	s.badges = nil
	s.profile = domain.Profile{}
	s.profileSet = false
	s.session = nil

	if err := s.store.Delete(ctx, store.RecordKeys()...); err != nil {
		log.Warn("failed to clear persisted records", "error", err)
	}

	s.publish(ctx, event.NewProgressResetEvent())

	log.Info("progress reset")
	return nil
}
