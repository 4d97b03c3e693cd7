package userrepo

import (
	"context"

	"shiptrack/internal/adapters/out/pebblestore/record"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/user"
	"shiptrack/internal/pkg/errs"
)

// PebbleUserRepository implements ports.UserRepository on the record store.
type PebbleUserRepository struct {
	store *record.Store[UserDTO]
}

// NewPebbleUserRepository creates a new Pebble-backed user repository.
func NewPebbleUserRepository(backend record.Backend) *PebbleUserRepository {
	return &PebbleUserRepository{
		store: record.NewStore[UserDTO](backend, Namespace),
	}
}

// Add saves a new user to storage.
func (r *PebbleUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Update saves an existing user to storage.
func (r *PebbleUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, err := r.store.Get(ctx, aggregate.ID().String()); err != nil {
		return err
	}

	return r.store.Insert(ctx, aggregate.ID().String(), fromDomain(aggregate))
}

// Get retrieves a user by ID.
func (r *PebbleUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.store.Get(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves the user carrying the given username.
// Usernames are unique, so the first match is the only match.
func (r *PebbleUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	dtos, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.Username == username {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("username", username)
}

// GetAll retrieves all users in ascending identifier order.
func (r *PebbleUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	dtos, err := r.store.Values(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// Remove deletes the user with the given ID.
func (r *PebbleUserRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	_, err := r.store.Remove(ctx, id.String())
	return err
}
