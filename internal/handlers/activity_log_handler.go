package handlers

import (
	"net/http"

	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type ActivityLogHandler struct {
	Service *services.ActivityLogService
}

func NewActivityLogHandler(service *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{Service: service}
}

// ListLogs returns the retained activity trail, newest first. Admin only,
// enforced by the router.
func (h *ActivityLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.Recent(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, logs)
}
