package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to dispatch a shipment for an
// order.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, orderID, driverID, position)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	// The parent order is now in transit.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	orderID      kernel.UUID
	driverID     kernel.UUID
	lastLocation kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to dispatch a new shipment.
// Validates that all identifiers are valid and the position is constructed.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	lastLocation kernel.GeoPoint,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setOrderID(orderID),
		shipmentCommand.setDriverID(driverID),
		shipmentCommand.setLastLocation(lastLocation),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the identifier of the order being shipped.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the assigned driver.
func (c CreateShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// LastLocation returns the driver's reported position.
func (c CreateShipmentCommand) LastLocation() kernel.GeoPoint {
	return c.lastLocation
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateShipmentCommand) setLastLocation(lastLocation kernel.GeoPoint) error {
	if err := lastLocation.Validate(); err != nil {
		return err
	}

	c.lastLocation = lastLocation
	return nil
}
