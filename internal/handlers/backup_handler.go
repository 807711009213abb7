package handlers

import (
	"net/http"

	"decor-backend/internal/services"

	"decor-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type BackupHandler struct {
	Service *services.BackupService
}

func NewBackupHandler(s *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: s}
}

func (h *BackupHandler) ListBackups(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List(r.Context()))
}

func (h *BackupHandler) CreateBackup(w http.ResponseWriter, r *http.Request) {
	info := h.Service.Create(r.Context())
	utils.JSON(w, http.StatusCreated, info)
}

func (h *BackupHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := h.Service.Restore(r.Context(), key); err != nil {
		utils.Error(w, http.StatusNotFound, "Backup not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (h *BackupHandler) DeleteBackup(w http.ResponseWriter, r *http.Request) {
	h.Service.Delete(r.Context(), mux.Vars(r)["key"])
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
