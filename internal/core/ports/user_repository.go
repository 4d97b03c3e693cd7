package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves the user with the given username.
	// Returns errs.ObjectNotFoundError if no user carries it.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAll retrieves all users in ascending identifier order.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Remove deletes the user aggregate with the given identifier.
	Remove(ctx context.Context, id kernel.UUID) error
}
