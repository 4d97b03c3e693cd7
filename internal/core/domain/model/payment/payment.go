// Package payment provides the Payment aggregate: a monetary record attached
// to an order. Payments never mutate the order they reference.
package payment

import (
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory methods.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment records an amount paid (or pending, or refunded — status is
// free-form) against an order.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    float64
	status    string
	createdAt kernel.Timestamp
	updatedAt *kernel.Timestamp

	isConstructed bool
}

// NewPayment creates a new Payment with validation.
// The amount must be positive and the status non-empty.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount float64,
	status string,
	createdAt kernel.Timestamp,
) (*Payment, error) {
	p := &Payment{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setStatus(status),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount float64,
	status string,
	createdAt kernel.Timestamp,
	updatedAt *kernel.Timestamp,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, status, createdAt)
	if err != nil {
		return nil, err
	}

	if updatedAt != nil {
		ts := *updatedAt
		p.updatedAt = &ts
	}

	return p, nil
}

// Validate ensures the Payment was properly constructed through a factory.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this payment is for.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the paid amount.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Status returns the free-form payment status.
func (p *Payment) Status() string {
	return p.status
}

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() kernel.Timestamp {
	return p.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation, or nil if the
// payment has never been mutated.
func (p *Payment) UpdatedAt() *kernel.Timestamp {
	return p.updatedAt
}

// Update replaces amount and status and records the mutation time.
// The referenced order is fixed for the lifetime of the payment.
func (p *Payment) Update(amount float64, status string, now kernel.Timestamp) error {
	if err := p.Validate(); err != nil {
		return err
	}

	draft := *p
	if err := errors.Join(
		draft.setAmount(amount),
		draft.setStatus(status),
	); err != nil {
		return err
	}

	*p = draft
	ts := now
	p.updatedAt = &ts
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	p.status = status
	return nil
}

func (p *Payment) setCreatedAt(createdAt kernel.Timestamp) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
