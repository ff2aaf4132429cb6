package handlers

import (
	"encoding/json"
	"net/http"

	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type SettingHandler struct {
	Service *services.SettingService
}

func NewSettingHandler(service *services.SettingService) *SettingHandler {
	return &SettingHandler{Service: service}
}

func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.Get(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *SettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	settings, err := h.Service.Update(r.Context(), actor, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}
