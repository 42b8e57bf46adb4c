package domain

import "time"

// Category identifies one of the fixed naturalistic strategy programs.
type Category string

const (
	CategoryExpansion Category = "expansion"
	CategoryRecast    Category = "recast"
	CategoryOpenEQ    Category = "open_eq"
	CategoryComment   Category = "comment"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{CategoryExpansion, CategoryRecast, CategoryOpenEQ, CategoryComment}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryExpansion, CategoryRecast, CategoryOpenEQ, CategoryComment:
		return true
	}
	return false
}

// Activity is a single practicable task inside a challenge day.
//
// Duration accumulates across every timed session and only ever grows.
// CompletionDate and HoneyDropsEarned are written exactly once, on the first
// completion; later sessions against a completed activity add duration only.
type Activity struct {
	ID               string     `json:"id" validate:"required"`
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description,omitempty"`
	RecommendedTime  int        `json:"recommended_time" validate:"gte=0"` // minutes, advisory
	Skills           []string   `json:"skills,omitempty"`
	Completed        bool       `json:"completed"`
	Duration         int64      `json:"duration"` // seconds, monotonically non-decreasing
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	HoneyDropsEarned int        `json:"honey_drops_earned"`
}

// CompletedOn reports whether the activity was first completed during the
// calendar day beginning at dayStart (local midnight, half-open interval).
func (a *Activity) CompletedOn(dayStart time.Time) bool {
	if !a.Completed || a.CompletionDate == nil {
		return false
	}
	dayEnd := dayStart.AddDate(0, 0, 1)
	return !a.CompletionDate.Before(dayStart) && a.CompletionDate.Before(dayEnd)
}

// ChallengeDay is one numbered day (1..30) within a category.
// Activity order is significant for display only.
type ChallengeDay struct {
	Day        int        `json:"day" validate:"required,gte=1,lte=30"`
	Activities []Activity `json:"activities" validate:"dive"`
}

// AllCompleted reports whether the day has at least one activity and every
// activity on it is completed. Days with no authored activities never count
// as complete.
func (d *ChallengeDay) AllCompleted() bool {
	if len(d.Activities) == 0 {
		return false
	}
	for i := range d.Activities {
		if !d.Activities[i].Completed {
			return false
		}
	}
	return true
}

// StrategyChallenge is a category's 30-day program. Not every day slot has to
// be authored; Days holds only the authored ones.
type StrategyChallenge struct {
	Type        Category       `json:"type" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description,omitempty"`
	Days        []ChallengeDay `json:"days" validate:"dive"`
}

// Day returns the authored ChallengeDay numbered n, or nil.
func (c *StrategyChallenge) Day(n int) *ChallengeDay {
	for i := range c.Days {
		if c.Days[i].Day == n {
			return &c.Days[i]
		}
	}
	return nil
}

// CompletionLog is the mutable aggregate: every category's challenge with its
// nested days and activities. It is the single source of truth written by the
// timer and read by the economy rules and the analytics aggregator.
type CompletionLog []StrategyChallenge

// Challenge returns the StrategyChallenge for the category, or nil.
func (l CompletionLog) Challenge(c Category) *StrategyChallenge {
	for i := range l {
		if l[i].Type == c {
			return &l[i]
		}
	}
	return nil
}

// FindActivity resolves a (category, day, activity) triple to the live
// Activity in the log, or nil if any part of the path is missing.
func (l CompletionLog) FindActivity(c Category, day int, activityID string) *Activity {
	ch := l.Challenge(c)
	if ch == nil {
		return nil
	}
	d := ch.Day(day)
	if d == nil {
		return nil
	}
	for i := range d.Activities {
		if d.Activities[i].ID == activityID {
			return &d.Activities[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the log. Used to hand snapshots to readers and
// to stamp a fresh mutable copy out of the immutable catalog template.
func (l CompletionLog) Clone() CompletionLog {
	out := make(CompletionLog, len(l))
	for i := range l {
		out[i] = l[i]
		out[i].Days = make([]ChallengeDay, len(l[i].Days))
		for j := range l[i].Days {
			out[i].Days[j] = l[i].Days[j]
			acts := make([]Activity, len(l[i].Days[j].Activities))
			copy(acts, l[i].Days[j].Activities)
			for k := range acts {
				if acts[k].CompletionDate != nil {
					t := *acts[k].CompletionDate
					acts[k].CompletionDate = &t
				}
				if acts[k].Skills != nil {
					s := make([]string, len(acts[k].Skills))
					copy(s, acts[k].Skills)
					acts[k].Skills = s
				}
			}
			out[i].Days[j].Activities = acts
		}
	}
	return out
}
