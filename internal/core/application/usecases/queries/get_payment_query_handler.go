package queries

import (
	"context"
	"encoding/json"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/cockroachdb/pebble"
)

// paymentRecord mirrors the stored JSON layout of a payment.
type paymentRecord struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt *int64  `json:"updated_at"`
}

func (r paymentRecord) toResponse() (GetPaymentQueryResponse, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromString(r.OrderID)
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	return GetPaymentQueryResponse{
		ID:        id,
		OrderID:   orderID,
		Amount:    r.Amount,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// GetPaymentQueryHandler retrieves a single payment record from storage.
type GetPaymentQueryHandler struct {
	db *pebble.DB
}

// NewGetPaymentQueryHandler creates a handler for single-payment retrieval.
func NewGetPaymentQueryHandler(db *pebble.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the query to retrieve one payment.
func (h GetPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQuery,
) (GetPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	raw, err := getRecord(h.db, paymentsNamespace, query.PaymentID().String())
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	var record paymentRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	return record.toResponse()
}
