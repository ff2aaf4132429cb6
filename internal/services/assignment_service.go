package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
	"rms-backend/internal/policy"
	"rms-backend/internal/repositories"
)

type AssignmentService struct {
	Assignments *repositories.AssignmentRepository
	Logs        *ActivityLogService
}

func NewAssignmentService(assignments *repositories.AssignmentRepository, logs *ActivityLogService) *AssignmentService {
	return &AssignmentService{Assignments: assignments, Logs: logs}
}

func (s *AssignmentService) List(ctx context.Context) ([]models.RoomAssignment, error) {
	return s.Assignments.All(ctx)
}

// Toggle flips the grant between user and room, creating it enabled when it
// does not exist yet.
func (s *AssignmentService) Toggle(ctx context.Context, actor *models.User, userID, roomID string) (*models.RoomAssignment, error) {
	if !policy.CanManageStaff(actor) {
		return nil, errs.Unauthorizedf("assignment management requires admin access")
	}

	assignments, err := s.Assignments.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range assignments {
		if assignments[i].UserID == userID && assignments[i].RoomID == roomID {
			idx = i
			break
		}
	}
	if idx != -1 {
		assignments[idx].IsEnabled = !assignments[idx].IsEnabled
	} else {
		assignments = append(assignments, models.RoomAssignment{
			ID:        uuid.NewString(),
			UserID:    userID,
			RoomID:    roomID,
			IsEnabled: true,
		})
		idx = len(assignments) - 1
	}
	if err := s.Assignments.Save(ctx, assignments); err != nil {
		return nil, err
	}
	toggled := assignments[idx]
	if err := s.Logs.Log(ctx, actor, "Toggle Assignment",
		fmt.Sprintf("Room grant for user %s set to %t.", userID, toggled.IsEnabled)); err != nil {
		return nil, err
	}
	return &toggled, nil
}
