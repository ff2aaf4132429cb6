package repositories

import (
	"context"

	"rms-backend/internal/models"
	"rms-backend/internal/store"
)

type PaymentRepository struct {
	Store store.Store
}

func NewPaymentRepository(st store.Store) *PaymentRepository {
	return &PaymentRepository{Store: st}
}

func (r *PaymentRepository) All(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if _, err := r.Store.Get(ctx, store.Payments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Save(ctx context.Context, payments []models.Payment) error {
	return r.Store.Put(ctx, store.Payments, payments)
}
