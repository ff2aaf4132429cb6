package handlers

import (
	"net/http"

	"rms-backend/internal/health"
	"rms-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.Checker
}

func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Checker.Check(r.Context()))
}
