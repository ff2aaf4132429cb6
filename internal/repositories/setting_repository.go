package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type SettingRepository struct {
	Store store.Store
}

func NewSettingRepository(st store.Store) *SettingRepository {
	return &SettingRepository{Store: st}
}

// Get returns the stored settings, defaulting the leaderboard to visible.
func (r *SettingRepository) Get(ctx context.Context) (models.Settings, error) {
	settings := models.Settings{ShowLeaderboard: true}
	if _, err := r.Store.Get(ctx, store.Settings, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}

func (r *SettingRepository) Save(ctx context.Context, settings models.Settings) error {
	return r.Store.Put(ctx, store.Settings, settings)
}
