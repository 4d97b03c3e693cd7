// Package orderrepo persists order records.
package orderrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// Namespace is the key prefix for order records.
const Namespace = "order"

type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OrderDTO struct {
	ID               string      `json:"id"`
	Description      string      `json:"description"`
	Weight           float64     `json:"weight"`
	SenderID         string      `json:"sender_id"`
	ReceiverID       string      `json:"receiver_id"`
	SenderLocation   GeoPointDTO `json:"sender_location"`
	ReceiverLocation GeoPointDTO `json:"receiver_location"`
	Status           string      `json:"status"`
	InitialAmount    float64     `json:"initial_amount"`
	CreatedAt        int64       `json:"created_at"`
	UpdatedAt        *int64      `json:"updated_at"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().String(),
		Description: aggregate.Description(),
		Weight:      aggregate.Weight(),
		SenderID:    aggregate.Sender().String(),
		ReceiverID:  aggregate.Receiver().String(),
		SenderLocation: GeoPointDTO{
			Lat: aggregate.SenderLocation().Lat(),
			Lng: aggregate.SenderLocation().Lng(),
		},
		ReceiverLocation: GeoPointDTO{
			Lat: aggregate.ReceiverLocation().Lat(),
			Lng: aggregate.ReceiverLocation().Lng(),
		},
		Status:        aggregate.Status().String(),
		InitialAmount: aggregate.InitialAmount(),
		CreatedAt:     aggregate.CreatedAt().Int64(),
	}

	if ts := aggregate.UpdatedAt(); ts != nil {
		v := ts.Int64()
		dto.UpdatedAt = &v
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	sender, err := kernel.UUIDFromString(dto.SenderID)
	if err != nil {
		return nil, err
	}

	receiver, err := kernel.UUIDFromString(dto.ReceiverID)
	if err != nil {
		return nil, err
	}

	senderLocation, err := kernel.NewGeoPoint(dto.SenderLocation.Lat, dto.SenderLocation.Lng)
	if err != nil {
		return nil, err
	}

	receiverLocation, err := kernel.NewGeoPoint(dto.ReceiverLocation.Lat, dto.ReceiverLocation.Lng)
	if err != nil {
		return nil, err
	}

	var updatedAt *kernel.Timestamp
	if dto.UpdatedAt != nil {
		ts := kernel.Timestamp(*dto.UpdatedAt)
		updatedAt = &ts
	}

	return order.RestoreOrder(
		id,
		dto.Description,
		dto.Weight,
		sender,
		receiver,
		senderLocation,
		receiverLocation,
		order.Status(dto.Status),
		dto.InitialAmount,
		kernel.Timestamp(dto.CreatedAt),
		updatedAt,
	)
}
