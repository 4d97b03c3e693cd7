package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdatePaymentCommandIsNotConstructed = errors.New(
	"UpdatePaymentCommand must be created via NewUpdatePaymentCommand constructor",
)

// UpdatePaymentCommand represents a request to replace a payment's amount and
// status. The referenced order never changes.
type UpdatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	amount    float64
	status    string

	guard guard.ConstructorGuard
}

// NewUpdatePaymentCommand creates a command to update an existing payment.
func NewUpdatePaymentCommand(paymentID kernel.UUID, amount float64, status string) (UpdatePaymentCommand, error) {
	paymentCommand := UpdatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setAmount(amount),
		paymentCommand.setStatus(status),
	); err != nil {
		return UpdatePaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to update.
func (c UpdatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the new amount.
func (c UpdatePaymentCommand) Amount() float64 {
	return c.amount
}

// Status returns the new status.
func (c UpdatePaymentCommand) Status() string {
	return c.status
}

func (c *UpdatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *UpdatePaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *UpdatePaymentCommand) setStatus(status string) error {
	if status == "" {
		return ErrPaymentStatusIsRequired
	}

	c.status = status
	return nil
}
