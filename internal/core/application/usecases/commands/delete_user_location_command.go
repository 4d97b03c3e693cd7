package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrDeleteUserLocationCommandIsNotConstructed = errors.New(
	"DeleteUserLocationCommand must be created via NewDeleteUserLocationCommand constructor",
)

// DeleteUserLocationCommand represents a request to forget a user's
// registered position.
type DeleteUserLocationCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserLocationCommand creates a command to forget a registered position.
func NewDeleteUserLocationCommand(userID kernel.UUID) (DeleteUserLocationCommand, error) {
	locationCommand := DeleteUserLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := locationCommand.setUserID(userID); err != nil {
		return DeleteUserLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserLocationCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose position is forgotten.
func (c DeleteUserLocationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserLocationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
