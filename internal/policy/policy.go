// Package policy holds the access-control decisions: pure functions of the
// acting user and the target data, with no side effects. Every mutation gate
// is role == ADMIN OR the relevant permission flag.
package policy

import "rms-backend/internal/models"

func IsAdmin(u *models.User) bool {
	return u != nil && u.Role == models.RoleAdmin
}

func CanMoveTenants(u *models.User) bool {
	return IsAdmin(u) || (u != nil && u.Permissions.CanMoveTenants)
}

func CanAddPayments(u *models.User) bool {
	return IsAdmin(u) || (u != nil && u.Permissions.CanAddPayments)
}

func CanEditPayments(u *models.User) bool {
	return IsAdmin(u) || (u != nil && u.Permissions.CanEditPayments)
}

func CanViewAllPayments(u *models.User) bool {
	return IsAdmin(u) || (u != nil && u.Permissions.CanViewPayments)
}

// CanManageStaff gates employee and assignment administration.
func CanManageStaff(u *models.User) bool {
	return IsAdmin(u)
}

// VisibleRooms filters rooms down to what u may see: admins see everything,
// employees only rooms with an enabled assignment to them.
func VisibleRooms(u *models.User, rooms []models.Room, assignments []models.RoomAssignment) []models.Room {
	if u == nil {
		return []models.Room{}
	}
	if IsAdmin(u) {
		return rooms
	}
	mine := make(map[string]bool)
	for _, a := range assignments {
		if a.UserID == u.ID && a.IsEnabled {
			mine[a.RoomID] = true
		}
	}
	visible := make([]models.Room, 0, len(mine))
	for _, r := range rooms {
		if mine[r.ID] {
			visible = append(visible, r)
		}
	}
	return visible
}

// VisiblePayments filters payments down to what u may see: everything for
// admins and canViewPayments holders, otherwise only payments u recorded.
func VisiblePayments(u *models.User, payments []models.Payment) []models.Payment {
	if u == nil {
		return []models.Payment{}
	}
	if CanViewAllPayments(u) {
		return payments
	}
	visible := make([]models.Payment, 0)
	for _, p := range payments {
		if p.RecordedByID == u.ID {
			visible = append(visible, p)
		}
	}
	return visible
}
