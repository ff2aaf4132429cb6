package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"rms-backend/internal/errs"
	"rms-backend/internal/metrics"
	"rms-backend/internal/models"
	"rms-backend/internal/policy"
	"rms-backend/internal/repositories"
	"rms-backend/internal/timeutil"
)

// PaymentService is the payment side of the ledger. Recording a payment
// debits the room balance, appends an immutable payment record and feeds the
// incentive engine, in that order, as one logical update.
type PaymentService struct {
	Rooms     *repositories.RoomRepository
	Payments  *repositories.PaymentRepository
	Incentive *IncentiveService
	Logs      *ActivityLogService
}

func NewPaymentService(rooms *repositories.RoomRepository, payments *repositories.PaymentRepository, incentive *IncentiveService, logs *ActivityLogService) *PaymentService {
	return &PaymentService{Rooms: rooms, Payments: payments, Incentive: incentive, Logs: logs}
}

// Record debits the room's balance by req.Amount and appends the payment.
// The balance may go negative; an overpayment is a credit, no floor applies.
func (s *PaymentService) Record(ctx context.Context, actor *models.User, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if actor == nil {
		return nil, errs.Unauthorizedf("no active session")
	}
	if !policy.CanAddPayments(actor) {
		return nil, errs.Unauthorizedf("payment recording requires admin access or the add-payments permission")
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, errs.Validationf("payment amount must be a number")
	}
	if req.Amount <= 0 {
		return nil, errs.Validationf("payment amount must be positive")
	}
	if req.Amount > models.MaxRent {
		return nil, errs.Validationf("max payment limit is %d", models.MaxRent)
	}
	status := req.Status
	if status == "" {
		status = models.PaymentPaid
	}
	if status != models.PaymentPaid && status != models.PaymentPending {
		return nil, errs.Validationf("invalid payment status %q", status)
	}

	rooms, err := s.Rooms.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range rooms {
		if rooms[i].ID == req.RoomID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.NotFoundf("room not found")
	}

	rooms[idx].CurrentBalance -= req.Amount
	if err := s.Rooms.Save(ctx, rooms); err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:           uuid.NewString(),
		RoomID:       req.RoomID,
		RoomNumber:   rooms[idx].RoomNumber,
		Amount:       req.Amount,
		Date:         timeutil.Now(),
		Status:       status,
		RecordedBy:   actor.FullName,
		RecordedByID: actor.ID,
	}
	payments, err := s.Payments.All(ctx)
	if err != nil {
		return nil, err
	}
	payments = append(payments, payment)
	if err := s.Payments.Save(ctx, payments); err != nil {
		return nil, err
	}

	if err := s.Incentive.Apply(ctx, actor.ID, req.Amount); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	metrics.PaymentAmountTotal.Add(req.Amount)

	if err := s.Logs.Log(ctx, actor, "Record Payment",
		fmt.Sprintf("Collected %.2f for room %s.", payment.Amount, payment.RoomNumber)); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Visible returns the payments the actor may see.
func (s *PaymentService) Visible(ctx context.Context, actor *models.User) ([]models.Payment, error) {
	if actor == nil {
		return []models.Payment{}, nil
	}
	payments, err := s.Payments.All(ctx)
	if err != nil {
		return nil, err
	}
	return policy.VisiblePayments(actor, payments), nil
}
