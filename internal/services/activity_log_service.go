package services

import (
	"context"

	"github.com/google/uuid"

	"rms-backend/internal/models"
	"rms-backend/internal/repositories"
	"rms-backend/internal/timeutil"
)

// maxLogEntries caps the stored audit trail; oldest entries are silently
// dropped on every append.
const maxLogEntries = 500

type ActivityLogService struct {
	Repo *repositories.ActivityLogRepository
}

func NewActivityLogService(repo *repositories.ActivityLogRepository) *ActivityLogService {
	return &ActivityLogService{Repo: repo}
}

// Log appends a user-attributable action. Only successful actions reach the
// trail; callers log after the mutation commits.
func (s *ActivityLogService) Log(ctx context.Context, user *models.User, action, details string) error {
	if user == nil {
		return nil
	}
	logs, err := s.Repo.All(ctx)
	if err != nil {
		return err
	}
	logs = append(logs, models.ActivityLog{
		ID:        uuid.NewString(),
		Timestamp: timeutil.Now(),
		UserID:    user.ID,
		UserName:  user.FullName,
		Action:    action,
		Details:   details,
	})
	if len(logs) > maxLogEntries {
		logs = logs[len(logs)-maxLogEntries:]
	}
	return s.Repo.Save(ctx, logs)
}

// Recent returns the trail newest first.
func (s *ActivityLogService) Recent(ctx context.Context) ([]models.ActivityLog, error) {
	logs, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ActivityLog, len(logs))
	for i, l := range logs {
		out[len(logs)-1-i] = l
	}
	return out, nil
}
