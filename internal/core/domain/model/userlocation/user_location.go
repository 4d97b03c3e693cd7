// Package userlocation provides the UserLocation aggregate: the last-known
// geographic position of a user. The collection is keyed by user identifier,
// so a user has at most one location record and a repeated create silently
// replaces the previous one.
package userlocation

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrUserLocationIsNotConstructed is returned when a UserLocation instance was
// not created through the NewUserLocation or RestoreUserLocation factory methods.
var ErrUserLocationIsNotConstructed = errors.New(
	"UserLocation must be created via NewUserLocation or RestoreUserLocation")

// UserLocation records where a user last was. No existence check against the
// user collection is enforced: an orphaned location is permitted, which lets
// location feeds run ahead of account provisioning.
type UserLocation struct {
	id        kernel.UUID
	userID    kernel.UUID
	location  kernel.GeoPoint
	createdAt kernel.Timestamp
	updatedAt *kernel.Timestamp

	isConstructed bool
}

// NewUserLocation creates a new UserLocation with validation.
func NewUserLocation(
	id kernel.UUID,
	userID kernel.UUID,
	location kernel.GeoPoint,
	createdAt kernel.Timestamp,
) (*UserLocation, error) {
	l := &UserLocation{
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setUserID(userID),
		l.setLocation(location),
		l.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreUserLocation reconstructs a UserLocation from persistence.
func RestoreUserLocation(
	id kernel.UUID,
	userID kernel.UUID,
	location kernel.GeoPoint,
	createdAt kernel.Timestamp,
	updatedAt *kernel.Timestamp,
) (*UserLocation, error) {
	l, err := NewUserLocation(id, userID, location, createdAt)
	if err != nil {
		return nil, err
	}

	if updatedAt != nil {
		ts := *updatedAt
		l.updatedAt = &ts
	}

	return l, nil
}

// Validate ensures the UserLocation was properly constructed through a factory.
func (l *UserLocation) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrUserLocationIsNotConstructed
	}
	return nil
}

// ID returns the location record's unique identifier.
func (l *UserLocation) ID() kernel.UUID {
	return l.id
}

// UserID returns the identifier of the user this location belongs to.
// It doubles as the store key for the collection.
func (l *UserLocation) UserID() kernel.UUID {
	return l.userID
}

// Location returns the recorded coordinates.
func (l *UserLocation) Location() kernel.GeoPoint {
	return l.location
}

// CreatedAt returns the creation timestamp.
func (l *UserLocation) CreatedAt() kernel.Timestamp {
	return l.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation, or nil if the
// record has never been mutated.
func (l *UserLocation) UpdatedAt() *kernel.Timestamp {
	return l.updatedAt
}

// Update replaces the coordinates and records the mutation time.
func (l *UserLocation) Update(location kernel.GeoPoint, now kernel.Timestamp) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := l.setLocation(location); err != nil {
		return err
	}

	ts := now
	l.updatedAt = &ts
	return nil
}

func (l *UserLocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *UserLocation) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	l.userID = userID
	return nil
}

func (l *UserLocation) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	l.location = location
	return nil
}

func (l *UserLocation) setCreatedAt(createdAt kernel.Timestamp) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	l.createdAt = createdAt
	return nil
}
