package services

import (
	"context"

	"github.com/google/uuid"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
	"rms-backend/internal/repositories"
	"rms-backend/internal/timeutil"
)

type FeedbackService struct {
	Repo *repositories.FeedbackRepository
}

func NewFeedbackService(repo *repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

func (s *FeedbackService) Add(ctx context.Context, actor *models.User, req *models.CreateFeedbackRequest) (*models.Feedback, error) {
	if actor == nil {
		return nil, errs.Unauthorizedf("no active session")
	}
	if req.Type != models.FeedbackGeneral && req.Type != models.FeedbackFeature {
		return nil, errs.Validationf("invalid feedback type %q", req.Type)
	}
	if req.Content == "" {
		return nil, errs.Validationf("feedback content is required")
	}

	feedback := models.Feedback{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.FullName,
		Type:      req.Type,
		Content:   req.Content,
		Timestamp: timeutil.Now(),
		Status:    models.FeedbackPending,
	}
	feedbacks, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	feedbacks = append(feedbacks, feedback)
	if err := s.Repo.Save(ctx, feedbacks); err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.Repo.All(ctx)
}
