// Package paymentrepo persists payment records.
package paymentrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/payment"
)

// Namespace is the key prefix for payment records.
const Namespace = "payment"

type PaymentDTO struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt *int64  `json:"updated_at"`
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	dto := PaymentDTO{
		ID:        aggregate.ID().String(),
		OrderID:   aggregate.OrderID().String(),
		Amount:    aggregate.Amount(),
		Status:    aggregate.Status(),
		CreatedAt: aggregate.CreatedAt().Int64(),
	}

	if ts := aggregate.UpdatedAt(); ts != nil {
		v := ts.Int64()
		dto.UpdatedAt = &v
	}

	return dto
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var updatedAt *kernel.Timestamp
	if dto.UpdatedAt != nil {
		ts := kernel.Timestamp(*dto.UpdatedAt)
		updatedAt = &ts
	}

	return payment.RestorePayment(
		id, orderID, dto.Amount, dto.Status, kernel.Timestamp(dto.CreatedAt), updatedAt,
	)
}
