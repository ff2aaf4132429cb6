package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

// SessionRepository holds the single current-user snapshot. Readers must
// re-resolve the snapshot against the live users collection; permissions and
// coins change between reads.
type SessionRepository struct {
	Store store.Store
}

func NewSessionRepository(st store.Store) *SessionRepository {
	return &SessionRepository{Store: st}
}

func (r *SessionRepository) Current(ctx context.Context) (*models.User, error) {
	var user models.User
	ok, err := r.Store.Get(ctx, store.Session, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepository) Set(ctx context.Context, user *models.User) error {
	return r.Store.Put(ctx, store.Session, user)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.Store.Delete(ctx, store.Session)
}
