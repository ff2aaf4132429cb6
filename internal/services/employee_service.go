package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rms-backend/internal/errs"
	"rms-backend/internal/models"
	"rms-backend/internal/policy"
	"rms-backend/internal/repositories"
)

type EmployeeService struct {
	Users       *repositories.UserRepository
	Assignments *repositories.AssignmentRepository
	Logs        *ActivityLogService
}

func NewEmployeeService(users *repositories.UserRepository, assignments *repositories.AssignmentRepository, logs *ActivityLogService) *EmployeeService {
	return &EmployeeService{Users: users, Assignments: assignments, Logs: logs}
}

func (s *EmployeeService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	employees := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleEmployee {
			employees = append(employees, u)
		}
	}
	return employees, nil
}

// Add creates an employee account, active, with zeroed incentive counters.
func (s *EmployeeService) Add(ctx context.Context, actor *models.User, req *models.CreateEmployeeRequest) (*models.User, error) {
	if !policy.CanManageStaff(actor) {
		return nil, errs.Unauthorizedf("staff management requires admin access")
	}
	if req.Username == "" || req.Password == "" {
		return nil, errs.Validationf("username and password are required")
	}

	user := models.User{
		ID:          uuid.NewString(),
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		Role:        models.RoleEmployee,
		Email:       req.Email,
		IsActive:    true,
		Permissions: req.Permissions,
	}

	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	users = append(users, user)
	if err := s.Users.Save(ctx, users); err != nil {
		return nil, err
	}
	if err := s.Logs.Log(ctx, actor, "Add Employee", fmt.Sprintf("Employee %s created.", user.Username)); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update merges the non-nil fields of req into the user record.
func (s *EmployeeService) Update(ctx context.Context, actor *models.User, userID string, req *models.UpdateUserRequest) (*models.User, error) {
	if !policy.CanManageStaff(actor) {
		return nil, errs.Unauthorizedf("staff management requires admin access")
	}

	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.NotFoundf("user not found")
	}

	u := &users[idx]
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Password != nil {
		u.Password = *req.Password
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Permissions != nil {
		u.Permissions = *req.Permissions
	}
	if req.Coins != nil {
		u.Coins = *req.Coins
	}
	if req.TargetAmount != nil {
		u.TargetAmount = *req.TargetAmount
	}
	if req.MinAmount != nil {
		u.MinAmount = *req.MinAmount
	}
	if req.DailyTarget != nil {
		u.DailyTarget = *req.DailyTarget
	}

	if err := s.Users.Save(ctx, users); err != nil {
		return nil, err
	}
	updated := users[idx]
	if err := s.Logs.Log(ctx, actor, "Update Employee", fmt.Sprintf("Employee %s updated.", updated.Username)); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the employee and cascades to their room assignments.
func (s *EmployeeService) Delete(ctx context.Context, actor *models.User, userID string) error {
	if !policy.CanManageStaff(actor) {
		return errs.Unauthorizedf("staff management requires admin access")
	}

	users, err := s.Users.All(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.User, 0, len(users))
	var removed *models.User
	for _, u := range users {
		if u.ID == userID {
			removed = &u
			continue
		}
		kept = append(kept, u)
	}
	if removed == nil {
		return errs.NotFoundf("user not found")
	}
	if err := s.Users.Save(ctx, kept); err != nil {
		return err
	}

	assignments, err := s.Assignments.All(ctx)
	if err != nil {
		return err
	}
	keptAssignments := make([]models.RoomAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.UserID != userID {
			keptAssignments = append(keptAssignments, a)
		}
	}
	if err := s.Assignments.Save(ctx, keptAssignments); err != nil {
		return err
	}

	return s.Logs.Log(ctx, actor, "Delete Employee", fmt.Sprintf("Employee %s removed.", removed.Username))
}
