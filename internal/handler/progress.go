package handler

import (
	"net/http"
	"strconv"

	"github.com/kiwiorbit/speechive-7.1/internal/analytics"
	"github.com/kiwiorbit/speechive-7.1/internal/engine"
)

// HandleGetToday returns today's completion snapshot.
func HandleGetToday(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Today())
	}
}

// HandleGetCategories returns the per-category rollup.
func HandleGetCategories(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Categories())
	}
}

// HandleGetDailyTotals returns all 30 daily totals with heat levels.
func HandleGetDailyTotals(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.DailyTotals())
	}
}

// HandleGetWeekly returns one 7-day chart page. The week query parameter is
// 1-based and defaults to the first page.
func HandleGetWeekly(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := GetOptionalQueryParam(r, "week", "1")
		week, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		respondJSON(w, http.StatusOK, svc.Weekly(week))
	}
}

// HandleGetMonthly returns the 30-day chart series.
func HandleGetMonthly(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Monthly())
	}
}

// HandleGetTopActivities returns the five most-practiced activities.
func HandleGetTopActivities(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.TopActivities())
	}
}

// HandleGetChallenges returns the full completion log for rendering the
// challenge screens.
func HandleGetChallenges(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.CompletionLog())
	}
}
