package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/userlocation"
	"shiptrack/internal/core/ports"
)

// SetUserLocationCommandHandler handles the business logic for registering a
// user's position. The location store is keyed by user, so an existing
// position for the same user is overwritten. The user itself is not required
// to exist yet.
type SetUserLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	clock      ports.Clock
}

// NewSetUserLocationCommandHandler creates a handler for position registration.
func NewSetUserLocationCommandHandler(uowFactory LocationUoWFactory, clock ports.Clock) SetUserLocationCommandHandler {
	return SetUserLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the position registration command.
func (h *SetUserLocationCommandHandler) Handle(ctx context.Context, cmd SetUserLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := userlocation.NewUserLocation(cmd.LocationID(), cmd.UserID(), cmd.Location(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserLocationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
