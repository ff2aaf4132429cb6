package services

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/repositories"
	"rms-backend/internal/store"
)

// fixture wires every service over a fresh in-memory store.
type fixture struct {
	Store *store.Memory

	Users       *repositories.UserRepository
	Rooms       *repositories.RoomRepository
	Assignments *repositories.AssignmentRepository
	Payments    *repositories.PaymentRepository
	Sessions    *repositories.SessionRepository

	LogSvc        *ActivityLogService
	AuthSvc       *AuthService
	IncentiveSvc  *IncentiveService
	RoomSvc       *RoomService
	PaymentSvc    *PaymentService
	EmployeeSvc   *EmployeeService
	AssignmentSvc *AssignmentService
	FeedbackSvc   *FeedbackService
	SearchSvc     *SearchService
	SettingSvc    *SettingService
}

func newFixture() *fixture {
	st := store.NewMemory()

	users := repositories.NewUserRepository(st)
	rooms := repositories.NewRoomRepository(st)
	assignments := repositories.NewAssignmentRepository(st)
	payments := repositories.NewPaymentRepository(st)
	feedback := repositories.NewFeedbackRepository(st)
	logs := repositories.NewActivityLogRepository(st)
	settings := repositories.NewSettingRepository(st)
	sessions := repositories.NewSessionRepository(st)

	logSvc := NewActivityLogService(logs)
	incentiveSvc := NewIncentiveService(users)

	return &fixture{
		Store:       st,
		Users:       users,
		Rooms:       rooms,
		Assignments: assignments,
		Payments:    payments,
		Sessions:    sessions,

		LogSvc:        logSvc,
		AuthSvc:       NewAuthService(users, sessions, logSvc),
		IncentiveSvc:  incentiveSvc,
		RoomSvc:       NewRoomService(rooms, assignments, logSvc),
		PaymentSvc:    NewPaymentService(rooms, payments, incentiveSvc, logSvc),
		EmployeeSvc:   NewEmployeeService(users, assignments, logSvc),
		AssignmentSvc: NewAssignmentService(assignments, logSvc),
		FeedbackSvc:   NewFeedbackService(feedback),
		SearchSvc:     NewSearchService(users, rooms, assignments, payments),
		SettingSvc:    NewSettingService(settings, logSvc),
	}
}

// admin returns the live seed admin record.
func (f *fixture) admin(ctx context.Context) *models.User {
	u, _ := f.Users.ByID(ctx, "1")
	return u
}

// addEmployee persists an employee with the given permissions and returns it.
func (f *fixture) addEmployee(ctx context.Context, id, username string, perms models.UserPermissions) *models.User {
	users, _ := f.Users.All(ctx)
	u := models.User{
		ID:          id,
		Username:    username,
		Password:    "secret",
		FullName:    "Employee " + username,
		Role:        models.RoleEmployee,
		Email:       username + "@rms.com",
		IsActive:    true,
		Permissions: perms,
	}
	users = append(users, u)
	f.Users.Save(ctx, users)
	return &u
}

// addRoom persists a room directly, bypassing the service gates.
func (f *fixture) addRoom(ctx context.Context, room models.Room) models.Room {
	rooms, _ := f.Rooms.All(ctx)
	rooms = append(rooms, room)
	f.Rooms.Save(ctx, rooms)
	return room
}
