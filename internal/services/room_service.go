package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
	"rms-backend/internal/policy"
	"rms-backend/internal/repositories"
	"rms-backend/internal/timeutil"
)

type RoomService struct {
	Rooms       *repositories.RoomRepository
	Assignments *repositories.AssignmentRepository
	Logs        *ActivityLogService
}

func NewRoomService(rooms *repositories.RoomRepository, assignments *repositories.AssignmentRepository, logs *ActivityLogService) *RoomService {
	return &RoomService{Rooms: rooms, Assignments: assignments, Logs: logs}
}

// Visible returns the rooms the actor may see. An absent session sees
// nothing.
func (s *RoomService) Visible(ctx context.Context, actor *models.User) ([]models.Room, error) {
	if actor == nil {
		return []models.Room{}, nil
	}
	rooms, err := s.Rooms.All(ctx)
	if err != nil {
		return nil, err
	}
	if policy.IsAdmin(actor) {
		return rooms, nil
	}
	assignments, err := s.Assignments.All(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisibleRooms(actor, rooms, assignments), nil
}

// Add creates a room. The initial balance is the monthly rent for occupied
// rooms and zero otherwise; from then on only the payment ledger moves it.
func (s *RoomService) Add(ctx context.Context, actor *models.User, req *models.CreateRoomRequest) (*models.Room, error) {
	if !policy.CanManageStaff(actor) {
		return nil, errs.Unauthorizedf("room creation requires admin access")
	}
	if req.MonthlyRent < 0 || req.MonthlyRent > models.MaxRent {
		return nil, errs.Validationf("max rent limit is %d", models.MaxRent)
	}

	room := models.Room{
		ID:         uuid.NewString(),
		RoomNumber: req.RoomNumber,
		Type:       req.Type,
		Status:     req.Status,
		Floor:      req.Floor,
		Building:   req.Building,

		MonthlyRent:      req.MonthlyRent,
		MonthlyExpenses:  req.MonthlyExpenses,
		TargetCollection: req.TargetCollection,
		MinCollection:    req.MinCollection,

		CreatedAt:            timeutil.Now(),
		OccupancyStartDate:   req.OccupancyStartDate,
		OccupancyEndDate:     req.OccupancyEndDate,
		IsOpenEnded:          req.IsOpenEnded,
		ReservationStartDate: req.ReservationStartDate,
		ReservationEndDate:   req.ReservationEndDate,
	}
	if room.Status == models.RoomOccupied {
		room.CurrentBalance = room.MonthlyRent
	}

	rooms, err := s.Rooms.All(ctx)
	if err != nil {
		return nil, err
	}
	rooms = append(rooms, room)
	if err := s.Rooms.Save(ctx, rooms); err != nil {
		return nil, err
	}
	if err := s.Logs.Log(ctx, actor, "Add Room", fmt.Sprintf("Room %s created.", room.RoomNumber)); err != nil {
		return nil, err
	}
	return &room, nil
}

// Update merges the non-nil fields of req into the room.
func (s *RoomService) Update(ctx context.Context, actor *models.User, roomID string, req *models.UpdateRoomRequest) (*models.Room, error) {
	if !policy.CanMoveTenants(actor) {
		return nil, errs.Unauthorizedf("room updates require admin access or the move-tenants permission")
	}
	if req.MonthlyRent != nil && (*req.MonthlyRent < 0 || *req.MonthlyRent > models.MaxRent) {
		return nil, errs.Validationf("max rent limit is %d", models.MaxRent)
	}

	rooms, err := s.Rooms.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range rooms {
		if rooms[i].ID == roomID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.NotFoundf("room not found")
	}

	applyRoomUpdate(&rooms[idx], req)
	if err := s.Rooms.Save(ctx, rooms); err != nil {
		return nil, err
	}
	updated := rooms[idx]
	if err := s.Logs.Log(ctx, actor, "Update Room", fmt.Sprintf("Room %s updated.", updated.RoomNumber)); err != nil {
		return nil, err
	}
	return &updated, nil
}

// BulkUpdate applies the same merge to every listed room that exists.
// Unknown ids are skipped, not errors; this is deliberate best-effort batch
// semantics. Returns the number of rooms actually updated.
func (s *RoomService) BulkUpdate(ctx context.Context, actor *models.User, roomIDs []string, req *models.UpdateRoomRequest) (int, error) {
	if !policy.CanMoveTenants(actor) {
		return 0, errs.Unauthorizedf("room updates require admin access or the move-tenants permission")
	}
	if req.MonthlyRent != nil && (*req.MonthlyRent < 0 || *req.MonthlyRent > models.MaxRent) {
		return 0, errs.Validationf("max rent limit is %d", models.MaxRent)
	}

	rooms, err := s.Rooms.All(ctx)
	if err != nil {
		return 0, err
	}
	wanted := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}
	updated := 0
	for i := range rooms {
		if wanted[rooms[i].ID] {
			applyRoomUpdate(&rooms[i], req)
			updated++
		}
	}
	if err := s.Rooms.Save(ctx, rooms); err != nil {
		return 0, err
	}
	if err := s.Logs.Log(ctx, actor, "Bulk Update Rooms", fmt.Sprintf("%d room(s) updated.", updated)); err != nil {
		return 0, err
	}
	return updated, nil
}

func applyRoomUpdate(room *models.Room, req *models.UpdateRoomRequest) {
	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Building != nil {
		room.Building = *req.Building
	}
	if req.MonthlyRent != nil {
		room.MonthlyRent = *req.MonthlyRent
	}
	if req.MonthlyExpenses != nil {
		room.MonthlyExpenses = *req.MonthlyExpenses
	}
	if req.TargetCollection != nil {
		room.TargetCollection = *req.TargetCollection
	}
	if req.MinCollection != nil {
		room.MinCollection = *req.MinCollection
	}
	if req.LastMaintained != nil {
		room.LastMaintained = *req.LastMaintained
	}
	if req.MaintenanceCost != nil {
		room.MaintenanceCost = *req.MaintenanceCost
	}
	if req.MaintenanceEndDate != nil {
		room.MaintenanceEndDate = *req.MaintenanceEndDate
	}
	if req.OccupancyStartDate != nil {
		room.OccupancyStartDate = *req.OccupancyStartDate
	}
	if req.OccupancyEndDate != nil {
		room.OccupancyEndDate = *req.OccupancyEndDate
	}
	if req.IsOpenEnded != nil {
		room.IsOpenEnded = *req.IsOpenEnded
	}
	if req.ReservationStartDate != nil {
		room.ReservationStartDate = *req.ReservationStartDate
	}
	if req.ReservationEndDate != nil {
		room.ReservationEndDate = *req.ReservationEndDate
	}
}
