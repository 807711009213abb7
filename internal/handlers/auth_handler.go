package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"decor-backend/internal/auth"
	"decor-backend/internal/models"

	"decor-backend/pkg/utils"
)

type AuthHandler struct {
	Sessions *auth.SessionManager
}

func NewAuthHandler(sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// Login handles admin authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	session, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utils.JSON(w, http.StatusOK, models.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		LoginTime: session.LoginTime,
	})
}

// Logout drops the session. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(r.Context())
	utils.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Session reports whether the presented token is still valid, without
// sliding its expiry.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	utils.JSON(w, http.StatusOK, h.Sessions.Status(r.Context(), token))
}

func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
