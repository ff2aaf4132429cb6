package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

func TestUserRepositorySeedsAdmin(t *testing.T) {
	repo := NewUserRepository(store.NewMemory())
	ctx := context.Background()

	users, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.True(t, users[0].IsActive)
	assert.True(t, users[0].Permissions.CanAddPayments)
}

func TestSeedNotPersistedUntilFirstWrite(t *testing.T) {
	st := store.NewMemory()
	repo := NewUserRepository(st)
	ctx := context.Background()

	repo.All(ctx)
	var raw []models.User
	ok, err := st.Get(ctx, store.Users, &raw)
	require.NoError(t, err)
	assert.False(t, ok, "reading the seed must not write the collection")
}

func TestSaveReplacesSeed(t *testing.T) {
	repo := NewUserRepository(store.NewMemory())
	ctx := context.Background()

	// An explicit empty write beats the seed from then on
	require.NoError(t, repo.Save(ctx, []models.User{}))
	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestByID(t *testing.T) {
	repo := NewUserRepository(store.NewMemory())
	ctx := context.Background()

	u, err := repo.ByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)

	missing, err := repo.ByID(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
