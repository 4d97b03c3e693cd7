package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// UpdatePaymentCommandHandler handles the business logic for payment updates.
type UpdatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      ports.Clock
}

// NewUpdatePaymentCommandHandler creates a handler for payment update operations.
func NewUpdatePaymentCommandHandler(uowFactory PaymentUoWFactory, clock ports.Clock) UpdatePaymentCommandHandler {
	return UpdatePaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the payment update command.
// Fails with an object not found error when the payment does not exist.
func (h *UpdatePaymentCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Amount(), cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
