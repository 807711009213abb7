package handlers

import (
	"encoding/json"
	"net/http"

	"decor-backend/internal/models"
	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type InquiryHandler struct {
	Service *services.InquiryService
}

func NewInquiryHandler(s *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: s}
}

// Submit is the public contact form endpoint.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	inquiry := h.Service.Submit(r.Context(), &req)
	utils.JSON(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListInquiries(r.Context()))
}

func (h *InquiryHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	inquiry, err := h.Service.GetInquiry(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Inquiry not found")
		return
	}
	utils.JSON(w, http.StatusOK, inquiry)
}

func (h *InquiryHandler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	inquiry, err := h.Service.UpdateInquiry(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Inquiry not found")
		return
	}
	utils.JSON(w, http.StatusOK, inquiry)
}

func (h *InquiryHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteInquiry(r.Context(), id); err != nil {
		utils.Error(w, http.StatusNotFound, "Inquiry not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *InquiryHandler) BulkDeleteInquiries(w http.ResponseWriter, r *http.Request) {
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

	removed := h.Service.BulkDeleteInquiries(r.Context(), req.IDs)
	utils.JSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *InquiryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Stats(r.Context()))
}
