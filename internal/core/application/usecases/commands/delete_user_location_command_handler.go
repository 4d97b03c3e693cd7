package commands

import (
	"context"
)

// DeleteUserLocationCommandHandler handles the business logic for forgetting
// a user's registered position.
type DeleteUserLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewDeleteUserLocationCommandHandler creates a handler for position removal.
func NewDeleteUserLocationCommandHandler(uowFactory LocationUoWFactory) DeleteUserLocationCommandHandler {
	return DeleteUserLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position removal command.
// Fails with an object not found error when no position is registered for
// the user.
func (h *DeleteUserLocationCommandHandler) Handle(ctx context.Context, cmd DeleteUserLocationCommand) error {
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

	if err := uow.UserLocationRepository().RemoveByUserID(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
