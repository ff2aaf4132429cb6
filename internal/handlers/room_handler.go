package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rms-backend/internal/middleware"
	"rms-backend/internal/models"
	"rms-backend/internal/services"
	"rms-backend/pkg/utils"
)

type RoomHandler struct {
	Service *services.RoomService
}

func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{Service: service}
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.UserFromContext(r.Context())
	rooms, err := h.Service.Visible(r.Context(), actor)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// An occupied room must carry its occupancy start date. The ledger does
	// not enforce this; the request validation layer does.
	if req.Status == models.RoomOccupied && req.OccupancyStartDate == "" {
		http.Error(w, "Occupied rooms require an occupancy start date", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	room, err := h.Service.Add(r.Context(), actor, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateOccupiedUpdate(&req); err != "" {
		http.Error(w, err, http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	room, err := h.Service.Update(r.Context(), actor, mux.Vars(r)["id"], &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) BulkUpdateRooms(w http.ResponseWriter, r *http.Request) {
	var req models.BulkUpdateRoomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateOccupiedUpdate(&req.Updates); err != "" {
		http.Error(w, err, http.StatusBadRequest)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	updated, err := h.Service.BulkUpdate(r.Context(), actor, req.RoomIDs, &req.Updates)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// validateOccupiedUpdate rejects moves to Occupied that do not carry an
// occupancy start date in the same payload.
func validateOccupiedUpdate(req *models.UpdateRoomRequest) string {
	if req.Status != nil && *req.Status == models.RoomOccupied {
		if req.OccupancyStartDate == nil || *req.OccupancyStartDate == "" {
			return "Occupied rooms require an occupancy start date"
		}
	}
	return ""
}
