package commands

import (
	"context"
	"errors"

	"shiptrack/internal/pkg/errs"
)

// DeleteUserCommandHandler handles the business logic for user removal.
// The user's registered position is removed in the same transaction so no
// orphaned location survives the user it belongs to.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user removal operations.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user removal command.
// Fails with an object not found error when the user does not exist.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	if err := uow.UserRepository().Remove(ctx, cmd.UserID()); err != nil {
		return err
	}

	// A user without a registered position is legal, so a missing location
	// is not an error here.
	err := uow.UserLocationRepository().RemoveByUserID(ctx, cmd.UserID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return uow.Commit(ctx)
}
