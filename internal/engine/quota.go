package engine

import (
	"time"

	"github.com/kiwiorbit/speechive-7.1/internal/clock"
)

// completedOn counts activities first completed during the local calendar
// day containing at. Recomputed from completion dates on every call, so the
// gate resets itself at midnight with no scheduled job. Caller holds the lock.
func (s *service) completedOn(at time.Time) int {
	count := 0
	for i := range s.log {
		for j := range s.log[i].Days {
			for k := range s.log[i].Days[j].Activities {
				act := &s.log[i].Days[j].Activities[k]
				if act.Completed && act.CompletionDate != nil && clock.SameDay(*act.CompletionDate, at) {
					count++
				}
			}
		}
	}
	return count
}

// CompletedToday reports how many first-time completions happened on the
// calendar day containing at.
func (s *service) CompletedToday(at time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedOn(at)
}
