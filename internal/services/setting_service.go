package services

import (
	"context"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
	"rms-backend/internal/policy"
	"rms-backend/internal/repositories"
)

type SettingService struct {
	Repo *repositories.SettingRepository
	Logs *ActivityLogService
}

func NewSettingService(repo *repositories.SettingRepository, logs *ActivityLogService) *SettingService {
	return &SettingService{Repo: repo, Logs: logs}
}

func (s *SettingService) Get(ctx context.Context) (models.Settings, error) {
	return s.Repo.Get(ctx)
}

func (s *SettingService) Update(ctx context.Context, actor *models.User, req *models.UpdateSettingsRequest) (models.Settings, error) {
	if !policy.CanManageStaff(actor) {
		return models.Settings{}, errs.Unauthorizedf("settings require admin access")
	}
	settings, err := s.Repo.Get(ctx)
	if err != nil {
		return settings, err
	}
	if req.ShowLeaderboard != nil {
		settings.ShowLeaderboard = *req.ShowLeaderboard
	}
	if err := s.Repo.Save(ctx, settings); err != nil {
		return settings, err
	}
	if err := s.Logs.Log(ctx, actor, "Update Settings", "System settings updated."); err != nil {
		return settings, err
	}
	return settings, nil
}
