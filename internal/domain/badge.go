package domain

import "sort"

// BadgeStatus describes one day badge for presentation.
type BadgeStatus struct {
	Day      int  `json:"day"`
	Eligible bool `json:"eligible"`
	Claimed  bool `json:"claimed"`
}

// ClaimedBadgeSet is the set of day numbers whose badge reward has been
// collected. Kept sorted ascending; append-only except for a full reset.
type ClaimedBadgeSet []int

// Contains reports whether the badge for day has been claimed.
func (s ClaimedBadgeSet) Contains(day int) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// Add inserts day keeping the set sorted. Adding an existing day is a no-op.
func (s ClaimedBadgeSet) Add(day int) ClaimedBadgeSet {
	if s.Contains(day) {
		return s
	}
	out := append(s, day)
	sort.Ints(out)
	return out
}
