package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a request to replace a user's username and type.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	userType string

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update an existing user.
// Validates that the user ID is valid and username and type are non-empty.
func NewUpdateUserCommand(userID kernel.UUID, username string, userType string) (UpdateUserCommand, error) {
	userCommand := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setUsername(username),
		userCommand.setUserType(userType),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to update.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the new username.
func (c UpdateUserCommand) Username() string {
	return c.username
}

// UserType returns the new user type.
func (c UpdateUserCommand) UserType() string {
	return c.userType
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *UpdateUserCommand) setUserType(userType string) error {
	if userType == "" {
		return ErrUserTypeIsRequired
	}

	c.userType = userType
	return nil
}
