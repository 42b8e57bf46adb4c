// Package analytics derives progress views from the completion log. Every
// view is recomputed fresh on each call; nothing here is cached or
// persisted, so the numbers can never drift from the log.
package analytics

import (
	"math"
	"sort"
	"strconv"

	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/domain"
)

// DaysPerWeek is the page size of the weekly chart view.
const DaysPerWeek = 7

// Source supplies the completion log snapshot the views derive from.
type Source interface {
	CompletionLog() domain.CompletionLog
}

// Service defines the interface for analytics queries
type Service interface {
	Today() domain.TodaySnapshot
	Categories() []domain.CategorySummary
	DailyTotals() []domain.DayTotal
	Weekly(week int) domain.WeeklyView
	Monthly() []domain.ChartPoint
	TopActivities() []domain.TopActivity
}

type service struct {
	src Source
	clk clock.Clock
}

// NewService creates a new analytics service
func NewService(src Source, clk clock.Clock) Service {
	return &service{src: src, clk: clk}
}

// counted reports whether an activity contributes to practice aggregates.
// Unfinished or zero-length entries never count.
func counted(a *domain.Activity) bool {
	return a.Completed && a.Duration > 0
}

// toMinutes converts seconds to minutes rounded to one decimal place.
func toMinutes(seconds int64) float64 {
	return math.Round(float64(seconds)/60*10) / 10
}

// Today summarises activities first completed during the current local
// calendar day, newest completion first.
func (s *service) Today() domain.TodaySnapshot {
	log := s.src.CompletionLog()
	dayStart := clock.StartOfDay(s.clk.Now())

	snapshot := domain.TodaySnapshot{Activities: []domain.TodayActivity{}}
	type timed struct {
		entry domain.TodayActivity
		at    int64
	}
	var entries []timed

	for i := range log {
		ch := &log[i]
		for j := range ch.Days {
			for k := range ch.Days[j].Activities {
				a := &ch.Days[j].Activities[k]
				if !a.CompletedOn(dayStart) {
					continue
				}
				snapshot.Count++
				snapshot.DurationSeconds += a.Duration
				snapshot.HoneyDrops += a.HoneyDropsEarned
				entries = append(entries, timed{
					entry: domain.TodayActivity{
						Category:        ch.Type,
						CategoryTitle:   ch.Title,
						ActivityID:      a.ID,
						Title:           a.Title,
						DurationSeconds: a.Duration,
					},
					at: a.CompletionDate.UnixNano(),
				})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at > entries[j].at
	})
	for _, e := range entries {
		snapshot.Activities = append(snapshot.Activities, e.entry)
	}
	return snapshot
}

// Categories returns the per-category rollup in catalog order.
func (s *service) Categories() []domain.CategorySummary {
	log := s.src.CompletionLog()

	out := make([]domain.CategorySummary, 0, len(log))
	for i := range log {
		ch := &log[i]
		summary := domain.CategorySummary{Category: ch.Type, Title: ch.Title}
		for j := range ch.Days {
			for k := range ch.Days[j].Activities {
				a := &ch.Days[j].Activities[k]
				summary.ActivityCount++
				if a.Completed {
					summary.CompletedCount++
				}
				summary.DurationSeconds += a.Duration
			}
		}
		out = append(out, summary)
	}
	return out
}

// heatFor maps a day's counted completions to its calendar intensity.
func heatFor(completed int) domain.HeatLevel {
	switch {
	case completed == 0:
		return domain.HeatNone
	case completed == 1:
		return domain.HeatLow
	case completed == 2:
		return domain.HeatMedium
	case completed == 3:
		return domain.HeatHigh
	default:
		return domain.HeatMax
	}
}

// DailyTotals aggregates every challenge-day index 1..30 across all
// categories. Days with nothing counted still appear, at heat "none".
func (s *service) DailyTotals() []domain.DayTotal {
	log := s.src.CompletionLog()

	totals := make([]domain.DayTotal, domain.ChallengeDays)
	for d := range totals {
		totals[d].Day = d + 1
	}

	for i := range log {
		for j := range log[i].Days {
			day := log[i].Days[j].Day
			if day < 1 || day > domain.ChallengeDays {
				continue
			}
			t := &totals[day-1]
			for k := range log[i].Days[j].Activities {
				a := &log[i].Days[j].Activities[k]
				if !counted(a) {
					continue
				}
				t.DurationSeconds += a.Duration
				t.CompletedCount++
			}
		}
	}

	for d := range totals {
		totals[d].Heat = heatFor(totals[d].CompletedCount)
	}
	return totals
}

// WeekCount is the number of 7-day pages over the 30 daily totals.
func WeekCount() int {
	return (domain.ChallengeDays + DaysPerWeek - 1) / DaysPerWeek
}

// Weekly returns one 7-day page of the daily totals in minutes. Week is
// 1-based and clamped to the valid page range.
func (s *service) Weekly(week int) domain.WeeklyView {
	weekCount := WeekCount()
	if week < 1 {
		week = 1
	}
	if week > weekCount {
		week = weekCount
	}

	totals := s.DailyTotals()
	first := (week - 1) * DaysPerWeek
	last := first + DaysPerWeek
	if last > len(totals) {
		last = len(totals)
	}

	view := domain.WeeklyView{Week: week, WeekCount: weekCount}
	for _, t := range totals[first:last] {
		view.Points = append(view.Points, domain.ChartPoint{
			Label:   fmtDayLabel(t.Day),
			Minutes: toMinutes(t.DurationSeconds),
		})
	}
	return view
}

// Monthly returns the full 30-day series in minutes.
func (s *service) Monthly() []domain.ChartPoint {
	totals := s.DailyTotals()
	out := make([]domain.ChartPoint, 0, len(totals))
	for _, t := range totals {
		out = append(out, domain.ChartPoint{
			Label:   fmtDayLabel(t.Day),
			Minutes: toMinutes(t.DurationSeconds),
		})
	}
	return out
}

// TopActivities returns the five most-practiced activities grouped by exact
// title. Ties keep first-encountered order; the result is presented
// ascending so charts grow toward the most practiced.
func (s *service) TopActivities() []domain.TopActivity {
	log := s.src.CompletionLog()

	seconds := make(map[string]int64)
	var order []string
	for i := range log {
		for j := range log[i].Days {
			for k := range log[i].Days[j].Activities {
				a := &log[i].Days[j].Activities[k]
				if !counted(a) {
					continue
				}
				if _, ok := seconds[a.Title]; !ok {
					order = append(order, a.Title)
				}
				seconds[a.Title] += a.Duration
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return seconds[order[i]] > seconds[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}

	out := make([]domain.TopActivity, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, domain.TopActivity{
			Title:   order[i],
			Minutes: toMinutes(seconds[order[i]]),
		})
	}
	return out
}

func fmtDayLabel(day int) string {
	return "Day " + strconv.Itoa(day)
}
