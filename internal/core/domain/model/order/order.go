package order

import (
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a delivery order. It is the aggregate root that carries the
// priced delivery request from creation through shipment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and non-empty description
//   - Weight must be positive
//   - Sender and receiver identifiers must be valid
//   - Sender and receiver locations are snapshots frozen at creation time;
//     later changes to the users' stored locations never affect an existing order
//   - The initial amount is computed once at creation and never recomputed
//   - createdAt is immutable; updatedAt is unset until the first mutation
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id kernel.UUID

	// description is the caller-supplied summary of what is being shipped
	description string

	// weight is the package weight (must be positive); it feeds the pricing policy
	weight float64

	// sender and receiver are user identifiers
	sender   kernel.UUID
	receiver kernel.UUID

	// senderLocation and receiverLocation are snapshots of the users' stored
	// locations taken at creation time
	senderLocation   kernel.GeoPoint
	receiverLocation kernel.GeoPoint

	// status is the caller-supplied lifecycle state; the system only ever
	// writes InTransit to it
	status Status

	// initialAmount is the price computed at creation, immutable afterwards
	initialAmount float64

	createdAt kernel.Timestamp
	updatedAt *kernel.Timestamp

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order at business time; RestoreOrder exists for reconstruction from
// persistence.
//
// The location snapshots and the initial amount are computed by the caller
// (the order creation use case) before construction; the Order itself only
// guarantees they are never changed afterwards.
func NewOrder(
	id kernel.UUID,
	description string,
	weight float64,
	sender kernel.UUID,
	receiver kernel.UUID,
	senderLocation kernel.GeoPoint,
	receiverLocation kernel.GeoPoint,
	status Status,
	initialAmount float64,
	createdAt kernel.Timestamp,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDescription(description),
		o.setWeight(weight),
		o.setParties(sender, receiver),
		o.setLocations(senderLocation, receiverLocation),
		o.setStatus(status),
		o.setInitialAmount(initialAmount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// mutation timestamp. The same validations as NewOrder apply.
func RestoreOrder(
	id kernel.UUID,
	description string,
	weight float64,
	sender kernel.UUID,
	receiver kernel.UUID,
	senderLocation kernel.GeoPoint,
	receiverLocation kernel.GeoPoint,
	status Status,
	initialAmount float64,
	createdAt kernel.Timestamp,
	updatedAt *kernel.Timestamp,
) (*Order, error) {
	o, err := NewOrder(
		id, description, weight, sender, receiver,
		senderLocation, receiverLocation, status, initialAmount, createdAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt != nil {
		ts := *updatedAt
		o.updatedAt = &ts
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Description returns the caller-supplied order description.
func (o *Order) Description() string {
	return o.description
}

// Weight returns the package weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Sender returns the sending user's identifier.
func (o *Order) Sender() kernel.UUID {
	return o.sender
}

// Receiver returns the receiving user's identifier.
func (o *Order) Receiver() kernel.UUID {
	return o.receiver
}

// SenderLocation returns the sender location snapshot frozen at creation time.
func (o *Order) SenderLocation() kernel.GeoPoint {
	return o.senderLocation
}

// ReceiverLocation returns the receiver location snapshot frozen at creation time.
func (o *Order) ReceiverLocation() kernel.GeoPoint {
	return o.receiverLocation
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// InitialAmount returns the price computed at creation time.
// It is never recomputed, not even when the order is updated.
func (o *Order) InitialAmount() float64 {
	return o.initialAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() kernel.Timestamp {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation,
// or nil if the order has never been mutated.
func (o *Order) UpdatedAt() *kernel.Timestamp {
	return o.updatedAt
}

// Update replaces the caller-editable fields of the order and records the
// mutation time. Pricing is immutable post-creation: neither the location
// snapshots nor the initial amount are recomputed, even when sender or
// receiver change.
func (o *Order) Update(
	description string,
	weight float64,
	sender kernel.UUID,
	receiver kernel.UUID,
	status Status,
	now kernel.Timestamp,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	draft := *o
	if err := errors.Join(
		draft.setDescription(description),
		draft.setWeight(weight),
		draft.setParties(sender, receiver),
		draft.setStatus(status),
	); err != nil {
		return err
	}

	*o = draft
	o.touch(now)
	return nil
}

// MarkInTransit applies the system-driven status transition triggered by
// shipment creation. The transition happens at most once: an order already in
// transit is left untouched, including its mutation timestamp.
func (o *Order) MarkInTransit(now kernel.Timestamp) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.status.IsInTransit() {
		return nil
	}

	o.status = InTransit
	o.touch(now)
	return nil
}

func (o *Order) touch(now kernel.Timestamp) {
	ts := now
	o.updatedAt = &ts
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setParties(sender kernel.UUID, receiver kernel.UUID) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiver", err)
	}
	o.sender = sender
	o.receiver = receiver
	return nil
}

func (o *Order) setLocations(senderLocation kernel.GeoPoint, receiverLocation kernel.GeoPoint) error {
	if err := senderLocation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderLocation", err)
	}
	if err := receiverLocation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverLocation", err)
	}
	o.senderLocation = senderLocation
	o.receiverLocation = receiverLocation
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setInitialAmount(initialAmount float64) error {
	if initialAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("initialAmount",
			fmt.Errorf("%v is negative", initialAmount))
	}
	o.initialAmount = initialAmount
	return nil
}

func (o *Order) setCreatedAt(createdAt kernel.Timestamp) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
