package models

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleEmployee UserRole = "EMPLOYEE"
)

// UserPermissions are the per-employee capability flags. Admins bypass all
// of them.
type UserPermissions struct {
	CanMoveTenants  bool `json:"canMoveTenants"`
	CanViewPayments bool `json:"canViewPayments"`
	CanAddPayments  bool `json:"canAddPayments"`
	CanEditPayments bool `json:"canEditPayments"`
}

type User struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Password    string          `json:"password,omitempty"` // stored/compared in plain text (preserved source behavior)
	FullName    string          `json:"fullName"`
	Role        UserRole        `json:"role"`
	Email       string          `json:"email"`
	IsActive    bool            `json:"isActive"`
	Permissions UserPermissions `json:"permissions"`

	// Collection incentive tracking. DailyCollected is only meaningful for
	// the calendar day stored in LastCollectionDate.
	Coins              int     `json:"coins"`
	TargetAmount       float64 `json:"targetAmount"` // monthly target
	MinAmount          float64 `json:"minAmount"`    // monthly minimum
	DailyTarget        float64 `json:"dailyTarget"`
	TotalCollected     float64 `json:"totalCollected"`
	DailyCollected     float64 `json:"dailyCollected"`
	LastCollectionDate string  `json:"lastCollectionDate,omitempty"` // YYYY-MM-DD
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	FullName    string          `json:"fullName"`
	Email       string          `json:"email"`
	Permissions UserPermissions `json:"permissions"`
}

// UpdateUserRequest is a partial-field merge; nil fields are left unchanged.
type UpdateUserRequest struct {
	Username    *string          `json:"username,omitempty"`
	Password    *string          `json:"password,omitempty"`
	FullName    *string          `json:"fullName,omitempty"`
	Email       *string          `json:"email,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Permissions *UserPermissions `json:"permissions,omitempty"`

	Coins        *int     `json:"coins,omitempty"`
	TargetAmount *float64 `json:"targetAmount,omitempty"`
	MinAmount    *float64 `json:"minAmount,omitempty"`
	DailyTarget  *float64 `json:"dailyTarget,omitempty"`
}
