package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment by identifier.
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentQueryResponse represents shipment information in the read model.
type GetShipmentQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	DriverID     kernel.UUID
	LastLocation kernel.GeoPoint
	CreatedAt    int64
	UpdatedAt    *int64
}
