package locationrepo

import (
	"context"

	"shiptrack/internal/adapters/out/pebblestore/record"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/userlocation"
)

// PebbleUserLocationRepository implements ports.UserLocationRepository on the
// record store.
type PebbleUserLocationRepository struct {
	store *record.Store[UserLocationDTO]
}

// NewPebbleUserLocationRepository creates a new Pebble-backed user location
// repository.
func NewPebbleUserLocationRepository(backend record.Backend) *PebbleUserLocationRepository {
	return &PebbleUserLocationRepository{
		store: record.NewStore[UserLocationDTO](backend, Namespace),
	}
}

// Add saves a location record. A record already present for the same user is
// silently replaced.
func (r *PebbleUserLocationRepository) Add(ctx context.Context, aggregate *userlocation.UserLocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.UserID().String(), fromDomain(aggregate))
}

// Update saves an existing location record.
func (r *PebbleUserLocationRepository) Update(ctx context.Context, aggregate *userlocation.UserLocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, aggregate.UserID().String()); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.UserID().String(), fromDomain(aggregate))
}

// GetByUserID retrieves the location record of the given user.
func (r *PebbleUserLocationRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*userlocation.UserLocation, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.store.Get(ctx, userID.String())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all location records in ascending user identifier order.
func (r *PebbleUserLocationRepository) GetAll(ctx context.Context) ([]*userlocation.UserLocation, error) {
	dtos, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}

	locations := make([]*userlocation.UserLocation, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}

// RemoveByUserID deletes the location record of the given user.
func (r *PebbleUserLocationRepository) RemoveByUserID(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	_, err := r.store.Remove(ctx, userID.String())
	return err
}
