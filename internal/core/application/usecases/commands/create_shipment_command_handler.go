package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for dispatching
// shipments. Creating a shipment is the only operation that mutates an
// existing order: the parent order moves to in transit in the same
// transaction, so a failed order transition leaves no shipment behind.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewCreateShipmentCommandHandler creates a handler for shipment dispatch.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shipment dispatch command.
// Fails with an object not found error when the parent order does not exist.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	orderRepo := uow.OrderRepository()
	parentOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	aggregate, err := shipment.NewShipment(cmd.ShipmentID(), cmd.OrderID(), cmd.DriverID(), cmd.LastLocation(), now)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = parentOrder.MarkInTransit(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parentOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
