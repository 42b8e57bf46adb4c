package handler

import (
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/engine"
)

// ClaimBadgeRequest names the day badge to claim.
type ClaimBadgeRequest struct {
	Day int `json:"day" validate:"required,gte=1,lte=30"`
}

// ClaimBadgeResponse reports the balance after a claim.
type ClaimBadgeResponse struct {
	Day     int `json:"day"`
	Balance int `json:"balance"`
}

// HandleGetBadges lists every day badge with its eligibility and claim state.
func HandleGetBadges(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.BadgeStatuses())
	}
}

// HandleClaimBadge collects a day badge's reward.
func HandleClaimBadge(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimBadgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim badge"); err != nil {
			return
		}

		balance, err := svc.ClaimBadge(r.Context(), req.Day)
		if err != nil {
			respondServiceError(w, r, "Claim badge", err)
			return
		}

		respondJSON(w, http.StatusOK, ClaimBadgeResponse{Day: req.Day, Balance: balance})
	}
}
