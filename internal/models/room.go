package models

import "time"

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeFamily RoomType = "Family"
	RoomTypeDorm   RoomType = "Dorm"
	RoomTypeCustom RoomType = "Custom"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomReserved    RoomStatus = "Reserved"
)

// MaxRent is the hard cap on monthly rent and on a single payment amount,
// enforced at every write path.
const MaxRent = 9999

type Room struct {
	ID         string     `json:"id"`
	RoomNumber string     `json:"roomNumber"`
	Type       RoomType   `json:"type"`
	Status     RoomStatus `json:"status"`
	Floor      string     `json:"floor"`
	Building   string     `json:"building"`

	MonthlyRent     float64 `json:"monthlyRent"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	// CurrentBalance is the running amount owed by the occupant. It is a
	// ledger balance: only payment recording mutates it, and it is never
	// re-derived from rent.
	CurrentBalance   float64 `json:"currentBalance"`
	TargetCollection float64 `json:"targetCollection"`
	MinCollection    float64 `json:"minCollection"`

	CreatedAt            time.Time `json:"createdAt"`
	LastMaintained       string    `json:"lastMaintained,omitempty"`
	MaintenanceCost      float64   `json:"maintenanceCost,omitempty"`
	MaintenanceEndDate   string    `json:"maintenanceEndDate,omitempty"`
	OccupancyStartDate   string    `json:"occupancyStartDate,omitempty"`
	OccupancyEndDate     string    `json:"occupancyEndDate,omitempty"`
	IsOpenEnded          bool      `json:"isOpenEnded,omitempty"`
	ReservationStartDate string    `json:"reservationStartDate,omitempty"`
	ReservationEndDate   string    `json:"reservationEndDate,omitempty"`
}

// CreateRoomRequest represents the request body for adding a room
type CreateRoomRequest struct {
	RoomNumber string     `json:"roomNumber"`
	Type       RoomType   `json:"type"`
	Status     RoomStatus `json:"status"`
	Floor      string     `json:"floor"`
	Building   string     `json:"building"`

	MonthlyRent      float64 `json:"monthlyRent"`
	MonthlyExpenses  float64 `json:"monthlyExpenses"`
	TargetCollection float64 `json:"targetCollection"`
	MinCollection    float64 `json:"minCollection"`

	OccupancyStartDate   string `json:"occupancyStartDate,omitempty"`
	OccupancyEndDate     string `json:"occupancyEndDate,omitempty"`
	IsOpenEnded          bool   `json:"isOpenEnded,omitempty"`
	ReservationStartDate string `json:"reservationStartDate,omitempty"`
	ReservationEndDate   string `json:"reservationEndDate,omitempty"`
}

// UpdateRoomRequest is a partial-field merge; nil fields are left unchanged.
// CurrentBalance is deliberately absent: the balance belongs to the payment
// ledger.
type UpdateRoomRequest struct {
	RoomNumber *string     `json:"roomNumber,omitempty"`
	Type       *RoomType   `json:"type,omitempty"`
	Status     *RoomStatus `json:"status,omitempty"`
	Floor      *string     `json:"floor,omitempty"`
	Building   *string     `json:"building,omitempty"`

	MonthlyRent      *float64 `json:"monthlyRent,omitempty"`
	MonthlyExpenses  *float64 `json:"monthlyExpenses,omitempty"`
	TargetCollection *float64 `json:"targetCollection,omitempty"`
	MinCollection    *float64 `json:"minCollection,omitempty"`

	LastMaintained       *string  `json:"lastMaintained,omitempty"`
	MaintenanceCost      *float64 `json:"maintenanceCost,omitempty"`
	MaintenanceEndDate   *string  `json:"maintenanceEndDate,omitempty"`
	OccupancyStartDate   *string  `json:"occupancyStartDate,omitempty"`
	OccupancyEndDate     *string  `json:"occupancyEndDate,omitempty"`
	IsOpenEnded          *bool    `json:"isOpenEnded,omitempty"`
	ReservationStartDate *string  `json:"reservationStartDate,omitempty"`
	ReservationEndDate   *string  `json:"reservationEndDate,omitempty"`
}

// BulkUpdateRoomsRequest applies the same partial merge to every room in the
// set that exists; unknown ids are skipped.
type BulkUpdateRoomsRequest struct {
	RoomIDs []string          `json:"roomIds"`
	Updates UpdateRoomRequest `json:"updates"`
}
