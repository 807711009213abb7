package handlers

import (
	"encoding/json"
	"net/http"

	"decor-backend/internal/models"
	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(s *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListClients(r.Context()))
}

// Testimonials is the public quotes strip.
func (h *ClientHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Testimonials(r.Context()))
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	client, err := h.Service.GetClient(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Client not found")
		return
	}
	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	client := h.Service.CreateClient(r.Context(), &req)
	utils.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	client, err := h.Service.UpdateClient(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Client not found")
		return
	}
	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteClient(r.Context(), id); err != nil {
		utils.Error(w, http.StatusNotFound, "Client not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ClientHandler) BulkDeleteClients(w http.ResponseWriter, r *http.Request) {
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

	removed := h.Service.BulkDeleteClients(r.Context(), req.IDs)
	utils.JSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *ClientHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Stats(r.Context()))
}
