package orderrepo

import (
	"context"

	"shiptrack/internal/adapters/out/pebblestore/record"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// PebbleOrderRepository implements ports.OrderRepository on the record store.
type PebbleOrderRepository struct {
	store *record.Store[OrderDTO]
}

// NewPebbleOrderRepository creates a new Pebble-backed order repository.
func NewPebbleOrderRepository(backend record.Backend) *PebbleOrderRepository {
	return &PebbleOrderRepository{
		store: record.NewStore[OrderDTO](backend, Namespace),
	}
}

// Add saves a new order to storage.
func (r *PebbleOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Update saves an existing order to storage.
func (r *PebbleOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, aggregate.ID().String()); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Get retrieves an order by ID.
func (r *PebbleOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.store.Get(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all orders in ascending identifier order.
func (r *PebbleOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	dtos, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Remove deletes the order with the given ID.
func (r *PebbleOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	_, err := r.store.Remove(ctx, id.String())
	return err
}
