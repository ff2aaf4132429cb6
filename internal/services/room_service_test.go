package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
)

func TestAddRoomOccupiedSeedsBalance(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	room, err := f.RoomSvc.Add(ctx, f.admin(ctx), &models.CreateRoomRequest{
		RoomNumber:         "101",
		Type:               models.RoomTypeSingle,
		Status:             models.RoomOccupied,
		MonthlyRent:        750,
		OccupancyStartDate: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 750.0, room.CurrentBalance)
	assert.NotEmpty(t, room.ID)

	available, err := f.RoomSvc.Add(ctx, f.admin(ctx), &models.CreateRoomRequest{
		RoomNumber:  "102",
		Status:      models.RoomAvailable,
		MonthlyRent: 750,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, available.CurrentBalance)
}

func TestAddRoomRentCap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.RoomSvc.Add(ctx, f.admin(ctx), &models.CreateRoomRequest{
		RoomNumber:  "101",
		MonthlyRent: 10000,
	})
	assert.True(t, errs.IsValidation(err))

	_, err = f.RoomSvc.Add(ctx, f.admin(ctx), &models.CreateRoomRequest{
		RoomNumber:  "101",
		MonthlyRent: 9999,
	})
	assert.NoError(t, err, "cap is inclusive")
}

func TestAddRoomRequiresAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	emp := f.addEmployee(ctx, "e1", "emp", models.UserPermissions{CanMoveTenants: true})
	_, err := f.RoomSvc.Add(ctx, emp, &models.CreateRoomRequest{RoomNumber: "101"})
	assert.True(t, errs.IsUnauthorized(err), "move-tenants does not grant room creation")
}

func TestUpdateRoomPartialMerge(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addRoom(ctx, models.Room{
		ID:             "r1",
		RoomNumber:     "101",
		Building:       "A",
		MonthlyRent:    500,
		CurrentBalance: 500,
	})

	status := models.RoomMaintenance
	cost := 120.0
	room, err := f.RoomSvc.Update(ctx, f.admin(ctx), "r1", &models.UpdateRoomRequest{
		Status:          &status,
		MaintenanceCost: &cost,
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoomMaintenance, room.Status)
	assert.Equal(t, 120.0, room.MaintenanceCost)
	assert.Equal(t, "101", room.RoomNumber, "unset fields untouched")
	assert.Equal(t, "A", room.Building)
	assert.Equal(t, 500.0, room.CurrentBalance, "balance only moves via payments")
}

func TestUpdateRoomNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.RoomSvc.Update(ctx, f.admin(ctx), "ghost", &models.UpdateRoomRequest{})
	assert.True(t, errs.IsNotFound(err))
}

func TestUpdateRoomPermission(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addRoom(ctx, models.Room{ID: "r1", RoomNumber: "101"})

	emp := f.addEmployee(ctx, "e1", "emp", models.UserPermissions{})
	_, err := f.RoomSvc.Update(ctx, emp, "r1", &models.UpdateRoomRequest{})
	assert.True(t, errs.IsUnauthorized(err))

	mover := f.addEmployee(ctx, "e2", "mover", models.UserPermissions{CanMoveTenants: true})
	_, err = f.RoomSvc.Update(ctx, mover, "r1", &models.UpdateRoomRequest{})
	assert.NoError(t, err)
}

func TestBulkUpdateSkipsUnknownIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addRoom(ctx, models.Room{ID: "r1", RoomNumber: "101"})
	f.addRoom(ctx, models.Room{ID: "r2", RoomNumber: "102"})

	status := models.RoomReserved
	updated, err := f.RoomSvc.BulkUpdate(ctx, f.admin(ctx), []string{"r1", "ghost", "r2"},
		&models.UpdateRoomRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 2, updated, "unknown ids are skipped, not errors")

	rooms, _ := f.Rooms.All(ctx)
	for _, r := range rooms {
		assert.Equal(t, models.RoomReserved, r.Status)
	}
}

func TestVisibleRoomsFollowAssignments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addRoom(ctx, models.Room{ID: "r1", RoomNumber: "101"})
	f.addRoom(ctx, models.Room{ID: "r2", RoomNumber: "102"})

	f.Assignments.Save(ctx, []models.RoomAssignment{
		{ID: "a1", UserID: "e1", RoomID: "r1", IsEnabled: true},
		{ID: "a2", UserID: "e1", RoomID: "r2", IsEnabled: false},
	})

	emp := f.addEmployee(ctx, "e1", "emp", models.UserPermissions{})
	visible, err := f.RoomSvc.Visible(ctx, emp)
	require.NoError(t, err)
	require.Len(t, visible, 1, "disabled grants hide the room")
	assert.Equal(t, "r1", visible[0].ID)

	all, err := f.RoomSvc.Visible(ctx, f.admin(ctx))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := f.RoomSvc.Visible(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
