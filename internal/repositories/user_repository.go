package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type UserRepository struct {
	Store store.Store
}

func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{Store: st}
}

// seedUsers is the bootstrap user list returned while the collection has
// never been written.
func seedUsers() []models.User {
	return []models.User{
		{
			ID:       "1",
			Username: "admin",
			Password: "password123",
			FullName: "System Admin",
			Role:     models.RoleAdmin,
			Email:    "admin@rms.com",
			IsActive: true,
			Permissions: models.UserPermissions{
				CanMoveTenants:  true,
				CanViewPayments: true,
				CanAddPayments:  true,
				CanEditPayments: true,
			},
		},
	}
}

func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	ok, err := r.Store.Get(ctx, store.Users, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedUsers(), nil
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, users []models.User) error {
	return r.Store.Put(ctx, store.Users, users)
}

// ByID returns the live user record, or nil when absent.
func (r *UserRepository) ByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}
