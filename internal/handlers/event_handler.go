package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"decor-backend/internal/models"
	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type EventHandler struct {
	Service *services.EventService
}

func NewEventHandler(s *services.EventService) *EventHandler {
	return &EventHandler{Service: s}
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListEvents(r.Context()))
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	event, err := h.Service.GetEvent(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Event not found")
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	event := h.Service.CreateEvent(r.Context(), &req)
	utils.JSON(w, http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	event, err := h.Service.UpdateEvent(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Event not found")
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteEvent(r.Context(), id); err != nil {
		utils.Error(w, http.StatusNotFound, "Event not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// BulkDeleteEvents removes every listed id in a single collection rewrite.
func (h *EventHandler) BulkDeleteEvents(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	removed := h.Service.BulkDeleteEvents(r.Context(), req.IDs)
	utils.JSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// CompletedEvents is the public gallery of finished events.
func (h *EventHandler) CompletedEvents(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.CompletedEvents(r.Context()))
}

func (h *EventHandler) Stats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	stats := h.Service.Stats(r.Context(), now.Format("2006-01-02"), now.Format("2006-01"))
	utils.JSON(w, http.StatusOK, stats)
}
