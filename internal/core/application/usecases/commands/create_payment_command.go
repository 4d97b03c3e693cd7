package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreatePaymentCommandIsNotConstructed = errors.New(
		"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
	)
	ErrAmountIsInvalid         = errors.New("amount must be greater than 0")
	ErrPaymentStatusIsRequired = errors.New("payment status is required")
)

// CreatePaymentCommand represents a request to record a payment against an
// order.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	amount    float64
	status    string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a new payment.
// Validates that both identifiers are valid, the amount is positive and the
// status is non-empty.
func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	amount float64,
	status string,
) (CreatePaymentCommand, error) {
	paymentCommand := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setOrderID(orderID),
		paymentCommand.setAmount(amount),
		paymentCommand.setStatus(status),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being paid for.
func (c CreatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the paid amount.
func (c CreatePaymentCommand) Amount() float64 {
	return c.amount
}

// Status returns the payment status.
func (c CreatePaymentCommand) Status() string {
	return c.status
}

func (c *CreatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreatePaymentCommand) setStatus(status string) error {
	if status == "" {
		return ErrPaymentStatusIsRequired
	}

	c.status = status
	return nil
}
