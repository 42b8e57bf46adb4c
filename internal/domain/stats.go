package domain

// Analytics view types. All of these are derived fresh from the
// CompletionLog on every query and are never persisted.

// TodaySnapshot summarises activities first completed during the current
// local calendar day.
type TodaySnapshot struct {
	Count           int             `json:"count"`
	DurationSeconds int64           `json:"duration_seconds"`
	HoneyDrops      int             `json:"honey_drops"`
	Activities      []TodayActivity `json:"activities"`
}

// TodayActivity is one entry in today's activity log, newest first.
type TodayActivity struct {
	Category        Category `json:"category"`
	CategoryTitle   string   `json:"category_title"`
	ActivityID      string   `json:"activity_id"`
	Title           string   `json:"title"`
	DurationSeconds int64    `json:"duration_seconds"`
}

// CategorySummary is the per-category rollup: completed vs total activities
// and total practice time across all the category's days.
type CategorySummary struct {
	Category        Category `json:"category"`
	Title           string   `json:"title"`
	CompletedCount  int      `json:"completed_count"`
	ActivityCount   int      `json:"activity_count"`
	DurationSeconds int64    `json:"duration_seconds"`
}

// HeatLevel is the discrete calendar intensity class for a day.
type HeatLevel string

const (
	HeatNone   HeatLevel = "none"
	HeatLow    HeatLevel = "low"
	HeatMedium HeatLevel = "medium"
	HeatHigh   HeatLevel = "high"
	HeatMax    HeatLevel = "max"
)

// DayTotal aggregates one challenge-day index (1..30) across all categories.
type DayTotal struct {
	Day             int       `json:"day"`
	DurationSeconds int64     `json:"duration_seconds"`
	CompletedCount  int       `json:"completed_count"`
	Heat            HeatLevel `json:"heat"`
}

// ChartPoint is one bar of the weekly/monthly charts, in minutes rounded to
// one decimal place.
type ChartPoint struct {
	Label   string  `json:"label"`
	Minutes float64 `json:"minutes"`
}

// WeeklyView is one 7-day page over the 30 daily totals.
type WeeklyView struct {
	Week      int          `json:"week"` // 1-based page number
	WeekCount int          `json:"week_count"`
	Points    []ChartPoint `json:"points"`
}

// TopActivity is one ranked entry of the most-practiced activities.
// Grouping is by exact title string across every category.
type TopActivity struct {
	Title   string  `json:"title"`
	Minutes float64 `json:"minutes"`
}
