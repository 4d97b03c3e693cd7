package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/user"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// CreateUserCommandHandler handles the business logic for user registration.
// Enforces that usernames stay unique across all users.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      ports.Clock
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory, clock ports.Clock) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the user registration command.
// Fails with a duplicate value error when the username is already taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := userRepo.GetByUsername(ctx, cmd.Username()); err == nil {
		return errs.NewDuplicateValueError("username", cmd.Username())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.UserType(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
