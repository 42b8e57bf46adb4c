package handler

import (
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/engine"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
)

// HandleRedeem exchanges honey drops for a voucher.
func HandleRedeem(svc engine.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voucher, err := svc.Redeem(r.Context())
		if err != nil {
			respondServiceError(w, r, "Redeem", err)
			return
		}

		logger.FromContext(r.Context()).Info("voucher issued", "code", voucher.Code)
		respondJSON(w, http.StatusCreated, voucher)
	}
}
