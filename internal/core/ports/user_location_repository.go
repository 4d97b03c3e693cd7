package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/userlocation"
)

// UserLocationRepository defines the persistence contract for user location
// aggregates. Locations are keyed by the owning user's identifier, so each
// user has at most one registered position.
type UserLocationRepository interface {
	// Add persists a new user location aggregate to storage.
	Add(ctx context.Context, aggregate *userlocation.UserLocation) error

	// Update persists changes to an existing user location aggregate.
	Update(ctx context.Context, aggregate *userlocation.UserLocation) error

	// GetByUserID retrieves the location registered for the given user.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*userlocation.UserLocation, error)

	// GetAll retrieves all user locations in ascending owner order.
	GetAll(ctx context.Context) ([]*userlocation.UserLocation, error)

	// RemoveByUserID deletes the location registered for the given user.
	RemoveByUserID(ctx context.Context, userID kernel.UUID) error
}
