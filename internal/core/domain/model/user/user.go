// Package user provides the User aggregate: an account-like record identified
// by a globally unique username. Username uniqueness across the whole
// collection is enforced by the create use case, not by the entity itself.
package user

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User represents a participant in the logistics workflow (sender, receiver,
// driver, operator — the type field is free-form).
type User struct {
	id        kernel.UUID
	username  string
	userType  string
	createdAt kernel.Timestamp
	updatedAt *kernel.Timestamp

	isConstructed bool
}

// NewUser creates a new User with validation.
// Username and type must both be non-empty.
func NewUser(id kernel.UUID, username string, userType string, createdAt kernel.Timestamp) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setType(userType),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.UUID,
	username string,
	userType string,
	createdAt kernel.Timestamp,
	updatedAt *kernel.Timestamp,
) (*User, error) {
	u, err := NewUser(id, username, userType, createdAt)
	if err != nil {
		return nil, err
	}

	if updatedAt != nil {
		ts := *updatedAt
		u.updatedAt = &ts
	}

	return u, nil
}

// Validate ensures the User was properly constructed through a factory.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the globally unique username.
func (u *User) Username() string {
	return u.username
}

// Type returns the free-form user type.
func (u *User) Type() string {
	return u.userType
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() kernel.Timestamp {
	return u.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation, or nil if the
// user has never been mutated.
func (u *User) UpdatedAt() *kernel.Timestamp {
	return u.updatedAt
}

// Update replaces username and type and records the mutation time.
// An invalid payload leaves the user unchanged.
func (u *User) Update(username string, userType string, now kernel.Timestamp) error {
	if err := u.Validate(); err != nil {
		return err
	}

	draft := *u
	if err := errors.Join(
		draft.setUsername(username),
		draft.setType(userType),
	); err != nil {
		return err
	}

	*u = draft
	ts := now
	u.updatedAt = &ts
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setType(userType string) error {
	if userType == "" {
		return errs.NewValueIsRequiredError("type")
	}
	u.userType = userType
	return nil
}

func (u *User) setCreatedAt(createdAt kernel.Timestamp) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
