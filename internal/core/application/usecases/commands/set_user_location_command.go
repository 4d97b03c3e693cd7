package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrSetUserLocationCommandIsNotConstructed = errors.New(
	"SetUserLocationCommand must be created via NewSetUserLocationCommand constructor",
)

// SetUserLocationCommand represents a request to register a user's position.
// Positions are keyed by user, so registering a position for a user that
// already has one silently replaces it.
type SetUserLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	userID     kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSetUserLocationCommand creates a command to register a user's position.
func NewSetUserLocationCommand(
	locationID kernel.UUID,
	userID kernel.UUID,
	location kernel.GeoPoint,
) (SetUserLocationCommand, error) {
	locationCommand := SetUserLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setLocationID(locationID),
		locationCommand.setUserID(userID),
		locationCommand.setLocation(location),
	); err != nil {
		return SetUserLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserLocationCommand) Validate() error {
	return c.guard.Validate(ErrSetUserLocationCommandIsNotConstructed)
}

// LocationID returns the unique identifier for the location record.
func (c SetUserLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// UserID returns the identifier of the user the position belongs to.
func (c SetUserLocationCommand) UserID() kernel.UUID {
	return c.userID
}

// Location returns the position to register.
func (c SetUserLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *SetUserLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *SetUserLocationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SetUserLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
