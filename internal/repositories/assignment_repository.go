package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type AssignmentRepository struct {
	Store store.Store
}

func NewAssignmentRepository(st store.Store) *AssignmentRepository {
	return &AssignmentRepository{Store: st}
}

func (r *AssignmentRepository) All(ctx context.Context) ([]models.RoomAssignment, error) {
	var assignments []models.RoomAssignment
	if _, err := r.Store.Get(ctx, store.Assignments, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentRepository) Save(ctx context.Context, assignments []models.RoomAssignment) error {
	return r.Store.Put(ctx, store.Assignments, assignments)
}
