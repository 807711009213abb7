package handlers

import (
	"net/http"
	"strings"

	"decor-backend/internal/services"

	"decor-backend/pkg/utils"
)

type SearchHandler struct {
	Service *services.SearchService
}

func NewSearchHandler(s *services.SearchService) *SearchHandler {
	return &SearchHandler{Service: s}
}

// Search runs the global admin search. The optional types parameter is a
// comma-separated subset of the entity types.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var types []string
	if raw := r.URL.Query().Get("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	utils.JSON(w, http.StatusOK, h.Service.Search(r.Context(), query, types))
}
