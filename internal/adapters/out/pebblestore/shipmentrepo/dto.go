// Package shipmentrepo persists shipment records.
package shipmentrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// Namespace is the key prefix for shipment records.
const Namespace = "shipment"

type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ShipmentDTO struct {
	ID           string      `json:"id"`
	OrderID      string      `json:"order_id"`
	DriverID     string      `json:"driver_id"`
	LastLocation GeoPointDTO `json:"last_location"`
	CreatedAt    int64       `json:"created_at"`
	UpdatedAt    *int64      `json:"updated_at"`
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:       aggregate.ID().String(),
		OrderID:  aggregate.OrderID().String(),
		DriverID: aggregate.DriverID().String(),
		LastLocation: GeoPointDTO{
			Lat: aggregate.LastLocation().Lat(),
			Lng: aggregate.LastLocation().Lng(),
		},
		CreatedAt: aggregate.CreatedAt().Int64(),
	}

	if ts := aggregate.UpdatedAt(); ts != nil {
		v := ts.Int64()
		dto.UpdatedAt = &v
	}

	return dto
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromString(dto.DriverID)
	if err != nil {
		return nil, err
	}

	lastLocation, err := kernel.NewGeoPoint(dto.LastLocation.Lat, dto.LastLocation.Lng)
	if err != nil {
		return nil, err
	}

	var updatedAt *kernel.Timestamp
	if dto.UpdatedAt != nil {
		ts := kernel.Timestamp(*dto.UpdatedAt)
		updatedAt = &ts
	}

	return shipment.RestoreShipment(
		id, orderID, driverID, lastLocation, kernel.Timestamp(dto.CreatedAt), updatedAt,
	)
}
