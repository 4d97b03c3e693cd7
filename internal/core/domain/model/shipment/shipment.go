// Package shipment provides the Shipment aggregate: the physical movement
// record for an order. Creating a shipment is the one operation in the system
// that mutates another aggregate — the referenced order is moved to
// "in_transit" by the create use case.
package shipment

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory methods.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment tracks a driver carrying an order, with the driver's last reported
// position.
type Shipment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	driverID     kernel.UUID
	lastLocation kernel.GeoPoint
	createdAt    kernel.Timestamp
	updatedAt    *kernel.Timestamp

	isConstructed bool
}

// NewShipment creates a new Shipment with validation.
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	lastLocation kernel.GeoPoint,
	createdAt kernel.Timestamp,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setDriverID(driverID),
		s.setLastLocation(lastLocation),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	lastLocation kernel.GeoPoint,
	createdAt kernel.Timestamp,
	updatedAt *kernel.Timestamp,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID, driverID, lastLocation, createdAt)
	if err != nil {
		return nil, err
	}

	if updatedAt != nil {
		ts := *updatedAt
		s.updatedAt = &ts
	}

	return s, nil
}

// Validate ensures the Shipment was properly constructed through a factory.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order being shipped.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// DriverID returns the identifier of the driver carrying the order.
func (s *Shipment) DriverID() kernel.UUID {
	return s.driverID
}

// LastLocation returns the driver's last reported position.
func (s *Shipment) LastLocation() kernel.GeoPoint {
	return s.lastLocation
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() kernel.Timestamp {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation, or nil if the
// shipment has never been mutated.
func (s *Shipment) UpdatedAt() *kernel.Timestamp {
	return s.updatedAt
}

// Update replaces the driver and last reported position and records the
// mutation time. The referenced order is fixed for the lifetime of the shipment.
func (s *Shipment) Update(driverID kernel.UUID, lastLocation kernel.GeoPoint, now kernel.Timestamp) error {
	if err := s.Validate(); err != nil {
		return err
	}

	draft := *s
	if err := errors.Join(
		draft.setDriverID(driverID),
		draft.setLastLocation(lastLocation),
	); err != nil {
		return err
	}

	*s = draft
	ts := now
	s.updatedAt = &ts
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	s.driverID = driverID
	return nil
}

func (s *Shipment) setLastLocation(lastLocation kernel.GeoPoint) error {
	if err := lastLocation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lastLocation", err)
	}
	s.lastLocation = lastLocation
	return nil
}

func (s *Shipment) setCreatedAt(createdAt kernel.Timestamp) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}
