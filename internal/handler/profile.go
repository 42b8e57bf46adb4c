package handler

import (
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/engine"
)

// SaveProfileRequest carries caregiver details. The honey-drop balance is
// engine-owned and cannot be written through this endpoint.
type SaveProfileRequest struct {
	CaregiverName     string `json:"caregiver_name" validate:"required,max=120"`
	ChildName         string `json:"child_name" validate:"required,max=120"`
	ChildDOB          string `json:"child_dob" validate:"omitempty,datetime=2006-01-02"`
	ParentalEducation string `json:"parental_education" validate:"max=200"`
	HomeLanguage      string `json:"home_language" validate:"max=100"`
}

// ProfileResponse reports the profile and whether one has been saved.
type ProfileResponse struct {
	Present bool            `json:"present"`
	Profile *domain.Profile `json:"profile,omitempty"`
	Balance int             `json:"balance"`
}

// HandleGetProfile returns the caregiver profile and balance.
func HandleGetProfile(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, present := svc.Profile()
		resp := ProfileResponse{Present: present, Balance: svc.Balance()}
		if present {
			resp.Profile = &profile
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleSaveProfile stores caregiver details.
func HandleSaveProfile(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save profile"); err != nil {
			return
		}

		err := svc.SaveProfile(r.Context(), domain.Profile{
			CaregiverName:     req.CaregiverName,
			ChildName:         req.ChildName,
			ChildDOB:          req.ChildDOB,
			ParentalEducation: req.ParentalEducation,
			HomeLanguage:      req.HomeLanguage,
		})
		if err != nil {
			respondServiceError(w, r, "Save profile", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Profile saved"})
	}
}
