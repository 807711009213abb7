package handlers

import (
	"encoding/json"
	"net/http"

	"decor-backend/internal/models"
	"decor-backend/internal/store"

	"decor-backend/pkg/utils"
)

// SettingsHandler serves the small admin UI preferences. The sidebar flag
// persists as a bare boolean under its own key.
type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: st}
}

func (h *SettingsHandler) GetSidebar(w http.ResponseWriter, r *http.Request) {
	collapsed := false
	h.Store.Read(r.Context(), models.KeySidebar, &collapsed)
	utils.JSON(w, http.StatusOK, models.SidebarSetting{Collapsed: collapsed})
}

func (h *SettingsHandler) PutSidebar(w http.ResponseWriter, r *http.Request) {
	var req models.SidebarSetting
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.Store.Write(r.Context(), models.KeySidebar, req.Collapsed)
	utils.JSON(w, http.StatusOK, req)
}
