package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
)

func TestHandleGetToday(t *testing.T) {
	rig := newHandlerRig(t)
	completeActivity(t, rig, "exp-d1-a1")

	rec := httptest.NewRecorder()
	HandleGetToday(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/today", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap domain.TodaySnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(300), snap.DurationSeconds)
	assert.Equal(t, domain.ActivityReward, snap.HoneyDrops)
	require.Len(t, snap.Activities, 1)
	assert.Equal(t, "Reading Book Together", snap.Activities[0].Title)
}

func TestHandleGetCategories(t *testing.T) {
	rig := newHandlerRig(t)
	completeActivity(t, rig, "exp-d1-a1")

	rec := httptest.NewRecorder()
	HandleGetCategories(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []domain.CategorySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, domain.CategoryExpansion, summaries[0].Category)
	assert.Equal(t, 1, summaries[0].CompletedCount)
	assert.Equal(t, 2, summaries[0].ActivityCount)
}

func TestHandleGetDailyTotals(t *testing.T) {
	rig := newHandlerRig(t)

	rec := httptest.NewRecorder()
	HandleGetDailyTotals(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/daily", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var totals []domain.DayTotal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	require.Len(t, totals, domain.ChallengeDays)
	assert.Equal(t, domain.HeatNone, totals[0].Heat)
}

func TestHandleGetWeekly(t *testing.T) {
	rig := newHandlerRig(t)
	handler := HandleGetWeekly(rig.analytics)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/weekly?week=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.WeeklyView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 2, view.Week)
	require.Len(t, view.Points, 7)
	assert.Equal(t, "Day 8", view.Points[0].Label)
}

func TestHandleGetWeeklyDefaultsToFirstPage(t *testing.T) {
	rig := newHandlerRig(t)

	rec := httptest.NewRecorder()
	HandleGetWeekly(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/weekly", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view domain.WeeklyView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 1, view.Week)
}

func TestHandleGetWeeklyRejectsNonNumericWeek(t *testing.T) {
	rig := newHandlerRig(t)

	rec := httptest.NewRecorder()
	HandleGetWeekly(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/weekly?week=two", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetMonthly(t *testing.T) {
	rig := newHandlerRig(t)

	rec := httptest.NewRecorder()
	HandleGetMonthly(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/monthly", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var points []domain.ChartPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	assert.Len(t, points, domain.ChallengeDays)
}

func TestHandleGetTopActivities(t *testing.T) {
	rig := newHandlerRig(t)
	completeActivity(t, rig, "exp-d1-a1")

	rec := httptest.NewRecorder()
	HandleGetTopActivities(rig.analytics)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/progress/top", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var top []domain.TopActivity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top, 1)
	assert.Equal(t, "Reading Book Together", top[0].Title)
	assert.Equal(t, 5.0, top[0].Minutes)
}

func TestHandleGetChallenges(t *testing.T) {
	rig := newHandlerRig(t)

	rec := httptest.NewRecorder()
	HandleGetChallenges(rig.engine)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var log domain.CompletionLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &log))
	require.Len(t, log, 1)
	assert.Equal(t, domain.CategoryExpansion, log[0].Type)
}
