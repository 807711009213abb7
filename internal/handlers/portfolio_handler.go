package handlers

import (
	"encoding/json"
	"net/http"

	"decor-backend/internal/models"
	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PortfolioHandler struct {
	Service *services.PortfolioService
}

func NewPortfolioHandler(s *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{Service: s}
}

func (h *PortfolioHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListItems(r.Context()))
}

// PublishedItems is the public gallery.
func (h *PortfolioHandler) PublishedItems(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.PublishedItems(r.Context()))
}

// FeaturedItems feeds the landing page highlights.
func (h *PortfolioHandler) FeaturedItems(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.FeaturedItems(r.Context()))
}

func (h *PortfolioHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.Service.GetItem(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Portfolio item not found")
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

// RecordView bumps the public view counter. Always returns 204 so the
// widget never surfaces an error.
func (h *PortfolioHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	h.Service.RecordView(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *PortfolioHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePortfolioItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	item := h.Service.CreateItem(r.Context(), &req)
	utils.JSON(w, http.StatusCreated, item)
}

func (h *PortfolioHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdatePortfolioItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Portfolio item not found")
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *PortfolioHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		utils.Error(w, http.StatusNotFound, "Portfolio item not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PortfolioHandler) BulkDeleteItems(w http.ResponseWriter, r *http.Request) {
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

	removed := h.Service.BulkDeleteItems(r.Context(), req.IDs)
	utils.JSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *PortfolioHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Stats(r.Context()))
}
