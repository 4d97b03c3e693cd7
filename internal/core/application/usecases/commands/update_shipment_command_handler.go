package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// UpdateShipmentCommandHandler handles the business logic for shipment
// updates. Only the driver assignment and reported position change; the
// parent order's status is touched exclusively at shipment creation.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update operations.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shipment update command.
// Fails with an object not found error when the shipment does not exist.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.DriverID(), cmd.LastLocation(), h.clock.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
