package services

import (
	"context"
	"fmt"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
	"rms-backend/internal/repositories"
)

type AuthService struct {
	Users    *repositories.UserRepository
	Sessions *repositories.SessionRepository
	Logs     *ActivityLogService
}

func NewAuthService(users *repositories.UserRepository, sessions *repositories.SessionRepository, logs *ActivityLogService) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Logs: logs}
}

// Login matches username and password against the stored user list.
// Comparison is plain text; that is the preserved behavior of this system,
// not a recommendation.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		u := users[i]
		if u.Username == username && u.Password == password {
			if !u.IsActive {
				return nil, errs.Unauthorizedf("account is inactive")
			}
			if err := s.Sessions.Set(ctx, &u); err != nil {
				return nil, err
			}
			if err := s.Logs.Log(ctx, &u, "Login", fmt.Sprintf("User %s authenticated.", username)); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, errs.Unauthorizedf("invalid username or password")
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.Sessions.Clear(ctx)
}

// CurrentUser re-resolves the session snapshot against the live user list so
// callers always see current permissions and coin counts. Returns nil when
// no session exists or the user was deleted.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	snapshot, err := s.Sessions.Current(ctx)
	if err != nil || snapshot == nil {
		return nil, err
	}
	return s.Users.ByID(ctx, snapshot.ID)
}
