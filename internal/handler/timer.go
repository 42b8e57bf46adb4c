package handler

import (
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/engine"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
)

// StartTimerRequest identifies the activity to practice.
type StartTimerRequest struct {
	Category   string `json:"category" validate:"required,category"`
	Day        int    `json:"day" validate:"required,gte=1,lte=30"`
	ActivityID string `json:"activity_id" validate:"required"`
}

// TimerStatusResponse reports the active session, if any.
type TimerStatusResponse struct {
	Running        bool            `json:"running"`
	Session        *engine.Session `json:"session,omitempty"`
	ElapsedSeconds int64           `json:"elapsed_seconds"`
}

// HandleStartTimer begins a practice session.
func HandleStartTimer(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartTimerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start timer"); err != nil {
			return
		}

		session, err := svc.StartTimer(r.Context(), domain.Category(req.Category), req.Day, req.ActivityID)
		if err != nil {
			respondServiceError(w, r, "Start timer", err)
			return
		}

		logger.FromContext(r.Context()).Info("session started",
			"category", req.Category, "day", req.Day, "activity", req.ActivityID)
		respondJSON(w, http.StatusCreated, session)
	}
}

// HandleStopTimer ends the running session and settles rewards.
func HandleStopTimer(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.StopTimer(r.Context())
		if err != nil {
			respondServiceError(w, r, "Stop timer", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetTimer reports the active session and its elapsed seconds.
func HandleGetTimer(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, elapsed, running := svc.ActiveSession()
		respondJSON(w, http.StatusOK, TimerStatusResponse{
			Running:        running,
			Session:        session,
			ElapsedSeconds: elapsed,
		})
	}
}
