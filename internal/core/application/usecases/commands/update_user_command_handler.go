package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// UpdateUserCommandHandler handles the business logic for user updates.
// A username change is checked against all existing users so uniqueness
// holds at all times, not only at registration.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      ports.Clock
}

// NewUpdateUserCommandHandler creates a handler for user update operations.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory, clock ports.Clock) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the user update command.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.Username() != aggregate.Username() {
		if _, err = userRepo.GetByUsername(ctx, cmd.Username()); err == nil {
			return errs.NewDuplicateValueError("username", cmd.Username())
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = aggregate.Update(cmd.Username(), cmd.UserType(), h.clock.Now()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
