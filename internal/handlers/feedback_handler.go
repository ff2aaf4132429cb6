package handlers

import (
	"encoding/json"
	"net/http"

	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type FeedbackHandler struct {
	Service *services.FeedbackService
}

func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: service}
}

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, feedback)
}

func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	feedback, err := h.Service.Add(r.Context(), actor, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, feedback)
}
