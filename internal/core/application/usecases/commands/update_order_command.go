package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's mutable
// fields. Pricing and location snapshots are immutable post-creation and are
// deliberately absent here.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	description string
	weight      float64
	sender      kernel.UUID
	receiver    kernel.UUID
	status      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	description string,
	weight float64,
	sender kernel.UUID,
	receiver kernel.UUID,
	status order.Status,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDescription(description),
		orderCommand.setWeight(weight),
		orderCommand.setParties(sender, receiver),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Description returns the new parcel description.
func (c UpdateOrderCommand) Description() string {
	return c.description
}

// Weight returns the new parcel weight.
func (c UpdateOrderCommand) Weight() float64 {
	return c.weight
}

// Sender returns the new sending party.
func (c UpdateOrderCommand) Sender() kernel.UUID {
	return c.sender
}

// Receiver returns the new receiving party.
func (c UpdateOrderCommand) Receiver() kernel.UUID {
	return c.receiver
}

// Status returns the new status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *UpdateOrderCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *UpdateOrderCommand) setParties(sender kernel.UUID, receiver kernel.UUID) error {
	if err := errors.Join(sender.Validate(), receiver.Validate()); err != nil {
		return err
	}

	c.sender = sender
	c.receiver = receiver
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
