package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type FeedbackRepository struct {
	Store store.Store
}

func NewFeedbackRepository(st store.Store) *FeedbackRepository {
	return &FeedbackRepository{Store: st}
}

func (r *FeedbackRepository) All(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if _, err := r.Store.Get(ctx, store.Feedback, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) Save(ctx context.Context, feedbacks []models.Feedback) error {
	return r.Store.Put(ctx, store.Feedback, feedbacks)
}
