package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms-backend/internal/models"
)

func TestLogTrimsToRetentionCap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := f.admin(ctx)

	for i := 0; i < maxLogEntries+10; i++ {
		require.NoError(t, f.LogSvc.Log(ctx, admin, "Action", fmt.Sprintf("entry %d", i)))
	}

	logs, err := f.LogSvc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, logs, maxLogEntries)

	// Newest first; the oldest ten entries fell off
	assert.Equal(t, fmt.Sprintf("entry %d", maxLogEntries+9), logs[0].Details)
	assert.Equal(t, "entry 10", logs[len(logs)-1].Details)
}

func TestLogNilUserIsNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.LogSvc.Log(ctx, nil, "Action", "details"))

	logs, err := f.LogSvc.Recent(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRecentNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := f.admin(ctx)

	f.LogSvc.Log(ctx, admin, "First", "a")
	f.LogSvc.Log(ctx, admin, "Second", "b")
	f.LogSvc.Log(ctx, admin, "Third", "c")

	logs, err := f.LogSvc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "Third", logs[0].Action)
	assert.Equal(t, "First", logs[2].Action)
	assert.Equal(t, admin.FullName, logs[0].UserName)
}

func TestLogAttributesActor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	emp := &models.User{ID: "e1", FullName: "Ravi Kumar"}

	require.NoError(t, f.LogSvc.Log(ctx, emp, "Record Payment", "Collected 100.00 for room 101."))

	logs, _ := f.LogSvc.Recent(ctx)
	require.Len(t, logs, 1)
	assert.Equal(t, "e1", logs[0].UserID)
	assert.Equal(t, "Ravi Kumar", logs[0].UserName)
	assert.False(t, logs[0].Timestamp.IsZero())
}
