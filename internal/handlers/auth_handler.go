package handlers

import (
	"encoding/json"
	"net/http"

	"rms-backend/internal/auth"
	"rms-backend/internal/errs"
	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type AuthHandler struct {
	Service    *services.AuthService
	JWTManager *auth.JWTManager
}

func NewAuthHandler(service *services.AuthService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{Service: service, JWTManager: jwtManager}
}

// Login authenticates and returns a bearer token with the user snapshot.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errs.IsUnauthorized(err) {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		utils.Error(w, err)
		return
	}

	token, err := h.JWTManager.GenerateToken(user)
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Logout(r.Context()); err != nil {
		utils.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the live user record resolved by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
