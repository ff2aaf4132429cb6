package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
)

func TestLoginSeedAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.AuthSvc.Login(ctx, "admin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// Login is an audited action
	logs, err := f.LogSvc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Login", logs[0].Action)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.AuthSvc.Login(ctx, "admin", "wrong")
	assert.True(t, errs.IsUnauthorized(err))

	_, err = f.AuthSvc.Login(ctx, "nobody", "password123")
	assert.True(t, errs.IsUnauthorized(err))
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	users, _ := f.Users.All(ctx)
	users = append(users, models.User{
		ID:       "e1",
		Username: "suspended",
		Password: "secret",
		Role:     models.RoleEmployee,
		IsActive: false,
	})
	f.Users.Save(ctx, users)

	_, err := f.AuthSvc.Login(ctx, "suspended", "secret")
	assert.True(t, errs.IsUnauthorized(err))
}

func TestCurrentUserResolvesLiveRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.AuthSvc.Login(ctx, "admin", "password123")
	require.NoError(t, err)

	// Mutate the stored record after login; the session must reflect it.
	users, _ := f.Users.All(ctx)
	users[0].Coins = 42
	f.Users.Save(ctx, users)

	current, err := f.AuthSvc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 42, current.Coins, "session resolves to the live record, not the login snapshot")
}

func TestCurrentUserAfterLogout(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.AuthSvc.Login(ctx, "admin", "password123")
	require.NoError(t, err)
	require.NoError(t, f.AuthSvc.Logout(ctx))

	current, err := f.AuthSvc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrentUserDeletedAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	users, _ := f.Users.All(ctx)
	users = append(users, models.User{
		ID: "e1", Username: "temp", Password: "secret",
		Role: models.RoleEmployee, IsActive: true,
	})
	f.Users.Save(ctx, users)

	_, err := f.AuthSvc.Login(ctx, "temp", "secret")
	require.NoError(t, err)

	// Remove the account while the session persists
	f.Users.Save(ctx, users[:1])

	current, err := f.AuthSvc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "a deleted user has no session")
}
