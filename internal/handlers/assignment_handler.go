package handlers

import (
	"encoding/json"
	"net/http"

	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type AssignmentHandler struct {
	Service *services.AssignmentService
}

func NewAssignmentHandler(service *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: service}
}

func (h *AssignmentHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) ToggleAssignment(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.RoomID == "" {
		http.Error(w, "userId and roomId are required", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	assignment, err := h.Service.Toggle(r.Context(), actor, req.UserID, req.RoomID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, assignment)
}
