package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a request to reassign a shipment's driver
// and refresh the reported position. The parent order never changes.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	driverID     kernel.UUID
	lastLocation kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update an existing shipment.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	driverID kernel.UUID,
	lastLocation kernel.GeoPoint,
) (UpdateShipmentCommand, error) {
	shipmentCommand := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setDriverID(driverID),
		shipmentCommand.setLastLocation(lastLocation),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the new driver.
func (c UpdateShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// LastLocation returns the new reported position.
func (c UpdateShipmentCommand) LastLocation() kernel.GeoPoint {
	return c.lastLocation
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateShipmentCommand) setLastLocation(lastLocation kernel.GeoPoint) error {
	if err := lastLocation.Validate(); err != nil {
		return err
	}

	c.lastLocation = lastLocation
	return nil
}
