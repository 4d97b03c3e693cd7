package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove a user.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to remove an existing user.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	userCommand := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userCommand.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to remove.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
