package queries

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/pebble"
)

// GetAllPaymentsQueryHandler retrieves all payment records from storage in
// ascending identifier order.
type GetAllPaymentsQueryHandler struct {
	db *pebble.DB
}

// NewGetAllPaymentsQueryHandler creates a handler for payment list queries.
func NewGetAllPaymentsQueryHandler(db *pebble.DB) GetAllPaymentsQueryHandler {
	return GetAllPaymentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all payments.
func (h GetAllPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPaymentsQuery,
) ([]GetPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetPaymentQueryResponse, 0)
	err := scanNamespace(h.db, paymentsNamespace, func(value []byte) error {
		var record paymentRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return err
		}

		response, err := record.toResponse()
		if err != nil {
			return err
		}

		payments = append(payments, response)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}
