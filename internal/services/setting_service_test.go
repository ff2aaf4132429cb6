package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
)

func TestSettingsDefaultShowLeaderboard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	settings, err := f.SettingSvc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.ShowLeaderboard)
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	hide := false
	settings, err := f.SettingSvc.Update(ctx, f.admin(ctx), &models.UpdateSettingsRequest{
		ShowLeaderboard: &hide,
	})
	require.NoError(t, err)
	assert.False(t, settings.ShowLeaderboard)

	// The write sticks
	settings, err = f.SettingSvc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, settings.ShowLeaderboard)
}

func TestUpdateSettingsAdminOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	emp := f.addEmployee(ctx, "e1", "emp", models.UserPermissions{})

	hide := false
	_, err := f.SettingSvc.Update(ctx, emp, &models.UpdateSettingsRequest{ShowLeaderboard: &hide})
	assert.True(t, errs.IsUnauthorized(err))
}
