package queries

import (
	"context"
	"encoding/json"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/cockroachdb/pebble"
)

// shipmentRecord mirrors the stored JSON layout of a shipment.
type shipmentRecord struct {
	ID           string         `json:"id"`
	OrderID      string         `json:"order_id"`
	DriverID     string         `json:"driver_id"`
	LastLocation geoPointRecord `json:"last_location"`
	CreatedAt    int64          `json:"created_at"`
	UpdatedAt    *int64         `json:"updated_at"`
}

func (r shipmentRecord) toResponse() (GetShipmentQueryResponse, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromString(r.OrderID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	driverID, err := kernel.UUIDFromString(r.DriverID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	lastLocation, err := r.LastLocation.toGeoPoint()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return GetShipmentQueryResponse{
		ID:           id,
		OrderID:      orderID,
		DriverID:     driverID,
		LastLocation: lastLocation,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

// GetShipmentQueryHandler retrieves a single shipment record from storage.
type GetShipmentQueryHandler struct {
	db *pebble.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment retrieval.
func NewGetShipmentQueryHandler(db *pebble.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query to retrieve one shipment.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	raw, err := getRecord(h.db, shipmentsNamespace, query.ShipmentID().String())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var record shipmentRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return record.toResponse()
}
