package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
)

// CreateOrderCommand represents a request to create a new delivery order.
// Encapsulates the parcel details and the sender and receiver parties whose
// registered positions determine the price.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "spare parts", 2.5, senderID, receiverID, "pending")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	description string
	weight      float64
	sender      kernel.UUID
	receiver    kernel.UUID
	status      order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that all identifiers are valid, the description and status are
// non-empty, and the weight is positive.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	description string,
	weight float64,
	sender kernel.UUID,
	receiver kernel.UUID,
	status order.Status,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDescription(description),
		orderCommand.setWeight(weight),
		orderCommand.setParties(sender, receiver),
		orderCommand.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Description returns the parcel description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Weight returns the parcel weight.
func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

// Sender returns the identifier of the sending party.
func (c CreateOrderCommand) Sender() kernel.UUID {
	return c.sender
}

// Receiver returns the identifier of the receiving party.
func (c CreateOrderCommand) Receiver() kernel.UUID {
	return c.receiver
}

// Status returns the caller-supplied initial status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setParties(sender kernel.UUID, receiver kernel.UUID) error {
	if err := errors.Join(sender.Validate(), receiver.Validate()); err != nil {
		return err
	}

	c.sender = sender
	c.receiver = receiver
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
