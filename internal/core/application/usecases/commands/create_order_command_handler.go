package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the sender's and receiver's registered positions, prices the haul
// between them and persists the order with frozen position snapshots.
//
// The snapshots and the price are fixed at creation: later position moves do
// not retroactively change existing orders, and no update ever recomputes the
// amount.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingPolicy
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingPolicy,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Fails with an object not found error when either party has no registered
// position.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	senderLocation, err := locationRepo.GetByUserID(ctx, cmd.Sender())
	if err != nil {
		return wrapPartyLocation("senderLocation", cmd.Sender().String(), err)
	}

	receiverLocation, err := locationRepo.GetByUserID(ctx, cmd.Receiver())
	if err != nil {
		return wrapPartyLocation("receiverLocation", cmd.Receiver().String(), err)
	}

	distanceKm, err := senderLocation.Location().DistanceTo(receiverLocation.Location())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Description(),
		cmd.Weight(),
		cmd.Sender(),
		cmd.Receiver(),
		senderLocation.Location(),
		receiverLocation.Location(),
		cmd.Status(),
		h.pricing.Price(distanceKm, cmd.Weight()),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// wrapPartyLocation names which party's position was missing; other failures
// pass through untouched.
func wrapPartyLocation(param string, userID string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(param, userID, err)
	}
	return err
}
