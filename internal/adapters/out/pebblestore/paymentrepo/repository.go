package paymentrepo

import (
	"context"

	"shiptrack/internal/adapters/out/pebblestore/record"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/payment"
)

// PebblePaymentRepository implements ports.PaymentRepository on the record store.
type PebblePaymentRepository struct {
	store *record.Store[PaymentDTO]
}

// NewPebblePaymentRepository creates a new Pebble-backed payment repository.
func NewPebblePaymentRepository(backend record.Backend) *PebblePaymentRepository {
	return &PebblePaymentRepository{
		store: record.NewStore[PaymentDTO](backend, Namespace),
	}
}

// Add saves a new payment to storage.
func (r *PebblePaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Update saves an existing payment to storage.
func (r *PebblePaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, aggregate.ID().String()); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Get retrieves a payment by ID.
func (r *PebblePaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.store.Get(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all payments in ascending identifier order.
func (r *PebblePaymentRepository) GetAll(ctx context.Context) ([]*payment.Payment, error) {
	dtos, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
