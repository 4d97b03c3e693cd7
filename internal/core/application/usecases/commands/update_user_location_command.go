package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateUserLocationCommandIsNotConstructed = errors.New(
	"UpdateUserLocationCommand must be created via NewUpdateUserLocationCommand constructor",
)

// UpdateUserLocationCommand represents a request to move a user's registered
// position.
type UpdateUserLocationCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateUserLocationCommand creates a command to move a registered position.
func NewUpdateUserLocationCommand(userID kernel.UUID, location kernel.GeoPoint) (UpdateUserLocationCommand, error) {
	locationCommand := UpdateUserLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setUserID(userID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateUserLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserLocationCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose position moves.
func (c UpdateUserLocationCommand) UserID() kernel.UUID {
	return c.userID
}

// Location returns the new position.
func (c UpdateUserLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateUserLocationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
