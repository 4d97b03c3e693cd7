package queries

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/pebble"
)

// GetAllShipmentsQueryHandler retrieves all shipment records from storage in
// ascending identifier order.
type GetAllShipmentsQueryHandler struct {
	db *pebble.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetAllShipmentsQueryHandler(db *pebble.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentQueryResponse, 0)
	err := scanNamespace(h.db, shipmentsNamespace, func(value []byte) error {
		var record shipmentRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return err
		}

		response, err := record.toResponse()
		if err != nil {
			return err
		}

		shipments = append(shipments, response)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shipments, nil
}
