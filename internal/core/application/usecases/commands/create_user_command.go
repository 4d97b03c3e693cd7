package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrUserTypeIsRequired = errors.New("user type is required")
)

// CreateUserCommand represents a request to register a new user.
//
// Example:
//
//	userID := kernel.NewUUID()
//	cmd, err := NewCreateUserCommand(userID, "alice", "sender")
//	if err != nil {
//	    return fmt.Errorf("invalid user data: %w", err)
//	}
//
//	handler := NewCreateUserCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create user: %w", err)
//	}
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	userType string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// Validates that the user ID is valid and username and type are non-empty.
func NewCreateUserCommand(userID kernel.UUID, username string, userType string) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setUsername(username),
		userCommand.setUserType(userType),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the user.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested username.
func (c CreateUserCommand) Username() string {
	return c.username
}

// UserType returns the requested user type.
func (c CreateUserCommand) UserType() string {
	return c.userType
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *CreateUserCommand) setUserType(userType string) error {
	if userType == "" {
		return ErrUserTypeIsRequired
	}

	c.userType = userType
	return nil
}
