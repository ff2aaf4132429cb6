package handlers

import (
	"net/http"

	"rms-backend/internal/middleware"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type SearchHandler struct {
	Service *services.SearchService
}

func NewSearchHandler(service *services.SearchService) *SearchHandler {
	return &SearchHandler{Service: service}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.UserFromContext(r.Context())
	result, err := h.Service.Global(r.Context(), actor, r.URL.Query().Get("q"))
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}
