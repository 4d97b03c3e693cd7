package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/payment"
	"shiptrack/internal/core/ports"
)

// CreatePaymentCommandHandler handles the business logic for recording
// payments.
//
// The parent order existence check is configurable. In strict mode a payment
// against a missing order fails with an object not found error; in permissive
// mode the payment is recorded regardless, which tolerates orders managed
// outside this system.
type CreatePaymentCommandHandler struct {
	uowFactory       PaymentUoWFactory
	clock            ports.Clock
	strictOrderCheck bool
}

// NewCreatePaymentCommandHandler creates a handler for payment recording.
func NewCreatePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	clock ports.Clock,
	strictOrderCheck bool,
) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory:       uowFactory,
		clock:            clock,
		strictOrderCheck: strictOrderCheck,
	}
}

// Handle processes the payment recording command.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
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

	if h.strictOrderCheck {
		if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
			return err
		}
	}

	aggregate, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Amount(), cmd.Status(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
