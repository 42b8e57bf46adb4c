package handler

import (
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/notification"
)

// HandleGetNotifications returns the notification feed, newest first.
func HandleGetNotifications(svc notification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.List())
	}
}

// HandleMarkNotificationsRead marks the whole feed read.
func HandleMarkNotificationsRead(svc notification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.MarkAllRead(r.Context()); err != nil {
			respondServiceError(w, r, "Mark notifications read", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "All notifications marked read"})
	}
}

// HandleClearNotifications empties the feed.
func HandleClearNotifications(svc notification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearAll(r.Context()); err != nil {
			respondServiceError(w, r, "Clear notifications", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Notifications cleared"})
	}
}
