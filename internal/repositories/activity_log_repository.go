package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type ActivityLogRepository struct {
	Store store.Store
}

func NewActivityLogRepository(st store.Store) *ActivityLogRepository {
	return &ActivityLogRepository{Store: st}
}

func (r *ActivityLogRepository) All(ctx context.Context) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if _, err := r.Store.Get(ctx, store.Logs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *ActivityLogRepository) Save(ctx context.Context, logs []models.ActivityLog) error {
	return r.Store.Put(ctx, store.Logs, logs)
}
