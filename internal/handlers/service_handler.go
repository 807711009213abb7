package handlers

import (
	"encoding/json"
	"net/http"

	"decor-backend/internal/models"
	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	Service *services.ServiceCatalogService
}

func NewServiceHandler(s *services.ServiceCatalogService) *ServiceHandler {
	return &ServiceHandler{Service: s}
}

func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListServices(r.Context()))
}

// ActiveServices is the public catalog.
func (h *ServiceHandler) ActiveServices(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ActiveServices(r.Context()))
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	svc, err := h.Service.GetService(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.JSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	svc := h.Service.CreateService(r.Context(), &req)
	utils.JSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	svc, err := h.Service.UpdateService(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.JSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteService(r.Context(), id); err != nil {
		utils.Error(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ServiceHandler) BulkDeleteServices(w http.ResponseWriter, r *http.Request) {
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

	removed := h.Service.BulkDeleteServices(r.Context(), req.IDs)
	utils.JSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *ServiceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Stats(r.Context()))
}
