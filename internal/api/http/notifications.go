package httpapi

import (
	"net/http"

	"campus-cafeteria/internal/domain"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Notifications.ListByUser(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "notifications retrieved", notifications)
}

func (h *Handler) listUnreadNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Notifications.ListUnread(r.Context(), pathVar(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "unread notifications retrieved", notifications)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	notification, err := h.Notifications.MarkAsRead(r.Context(), pathVar(r, "notificationId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "notification marked as read", notification)
}

func (h *Handler) notifyMenuAvailable(w http.ResponseWriter, r *http.Request) {
	var req domain.MenuAvailableRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	notification, err := h.Notifications.MenuAvailable(r.Context(), pathVar(r, "userId"), req.MenuID, req.MenuName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, "notification sent", notification)
}
