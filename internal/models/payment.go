package models

import "time"

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
)

// Payment is immutable once created; there is no update path.
type Payment struct {
	ID           string        `json:"id"`
	RoomID       string        `json:"roomId"`
	RoomNumber   string        `json:"roomNumber"` // denormalized at creation
	Amount       float64       `json:"amount"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`
	RecordedBy   string        `json:"recordedBy"` // denormalized actor display name
	RecordedByID string        `json:"recordedById"`
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	RoomID string        `json:"roomId"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `json:"status,omitempty"`
}
