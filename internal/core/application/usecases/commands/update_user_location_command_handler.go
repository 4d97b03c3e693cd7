package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// UpdateUserLocationCommandHandler handles the business logic for moving a
// user's registered position. Orders created before the move keep their
// frozen location snapshots.
type UpdateUserLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	clock      ports.Clock
}

// NewUpdateUserLocationCommandHandler creates a handler for position moves.
func NewUpdateUserLocationCommandHandler(uowFactory LocationUoWFactory, clock ports.Clock) UpdateUserLocationCommandHandler {
	return UpdateUserLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the position move command.
// Fails with an object not found error when no position is registered for
// the user.
func (h *UpdateUserLocationCommandHandler) Handle(ctx context.Context, cmd UpdateUserLocationCommand) error {
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

	locationRepo := uow.UserLocationRepository()
	aggregate, err := locationRepo.GetByUserID(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Location(), h.clock.Now()); err != nil {
		return err
	}

	if err = locationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
