package handlers

import (
	"encoding/json"
	"net/http"

	"decor-backend/internal/models"
	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(s *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List(r.Context()))
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]int{"unread": h.Service.UnreadCount(r.Context())})
}

// CreateNotification lets the admin UI record custom notifications.
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	n := h.Service.Record(r.Context(), &models.Notification{
		Type:       req.Type,
		Category:   req.Category,
		Title:      req.Title,
		Message:    req.Message,
		EntityID:   req.EntityID,
		EntityName: req.EntityName,
		ActionBy:   req.ActionBy,
		Priority:   req.Priority,
		Metadata:   req.Metadata,
	})
	utils.JSON(w, http.StatusCreated, n)
}

// MarkRead is idempotent: marking an already-read notification changes
// nothing and still returns 200.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.Service.MarkRead(r.Context(), mux.Vars(r)["id"])
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.Service.MarkAllRead(r.Context())
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	h.Service.Delete(r.Context(), mux.Vars(r)["id"])
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *NotificationHandler) DeleteAllNotifications(w http.ResponseWriter, r *http.Request) {
	h.Service.DeleteAll(r.Context())
	utils.JSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// PurgeNotifications runs the retention sweep on demand, ahead of the
// background sweeper's next tick.
func (h *NotificationHandler) PurgeNotifications(w http.ResponseWriter, r *http.Request) {
	removed := h.Service.Purge(r.Context())
	utils.JSON(w, http.StatusOK, map[string]int{"removed": removed})
}
