package handler

import (
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/engine"
)

// HandleReset wipes all progress back to the authored catalog.
func HandleReset(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context()); err != nil {
			respondServiceError(w, r, "Reset", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "All progress has been reset"})
	}
}
