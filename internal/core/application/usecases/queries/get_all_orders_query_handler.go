package queries

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/pebble"
)

// GetAllOrdersQueryHandler retrieves all order records from storage in
// ascending identifier order.
type GetAllOrdersQueryHandler struct {
	db *pebble.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *pebble.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0)
	err := scanNamespace(h.db, ordersNamespace, func(value []byte) error {
		var record orderRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return err
		}

		response, err := record.toResponse()
		if err != nil {
			return err
		}

		orders = append(orders, response)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
