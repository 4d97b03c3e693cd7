package shipmentrepo

import (
	"context"

	"shiptrack/internal/adapters/out/pebblestore/record"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// PebbleShipmentRepository implements ports.ShipmentRepository on the record store.
type PebbleShipmentRepository struct {
	store *record.Store[ShipmentDTO]
}

// NewPebbleShipmentRepository creates a new Pebble-backed shipment repository.
func NewPebbleShipmentRepository(backend record.Backend) *PebbleShipmentRepository {
	return &PebbleShipmentRepository{
		store: record.NewStore[ShipmentDTO](backend, Namespace),
	}
}

// Add saves a new shipment to storage.
func (r *PebbleShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Update saves an existing shipment to storage.
func (r *PebbleShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, aggregate.ID().String()); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Get retrieves a shipment by ID.
func (r *PebbleShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.store.Get(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all shipments in ascending identifier order.
func (r *PebbleShipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	dtos, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
