// Package pebblestore provides a Pebble-backed implementation of the Unit of
// Work pattern. Business transactions run on indexed write batches so a
// failed operation leaves the database untouched, and every repository
// obtained from a unit of work reads and writes through the same batch.
package pebblestore

import (
	"context"
	"errors"

	"shiptrack/internal/adapters/out/pebblestore/locationrepo"
	"shiptrack/internal/adapters/out/pebblestore/orderrepo"
	"shiptrack/internal/adapters/out/pebblestore/paymentrepo"
	"shiptrack/internal/adapters/out/pebblestore/record"
	"shiptrack/internal/adapters/out/pebblestore/shipmentrepo"
	"shiptrack/internal/adapters/out/pebblestore/userrepo"
	"shiptrack/internal/core/ports"

	"github.com/cockroachdb/pebble"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called or the transaction already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

// PebbleUnitOfWorkFactory creates UnitOfWork instances over a shared Pebble
// database. Each business operation gets a fresh unit of work with its own
// write batch, isolated from other concurrent operations.
//
// Example:
//
//	db, err := pebblestore.Open(cfg.DBPath)
//	if err != nil {
//	    log.Fatal("failed to open database")
//	}
//	factory := pebblestore.NewPebbleUnitOfWorkFactory(db)
type PebbleUnitOfWorkFactory struct {
	db *pebble.DB
}

// NewPebbleUnitOfWorkFactory creates a factory for Pebble-based unit of work
// instances.
func NewPebbleUnitOfWorkFactory(db *pebble.DB) *PebbleUnitOfWorkFactory {
	return &PebbleUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management.
func (f *PebbleUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &PebbleUnitOfWork{db: f.db}
}

// PebbleUnitOfWork coordinates storage transactions for business operations.
// Begin opens an indexed write batch: repositories obtained from the unit of
// work read through the batch, so uncommitted writes are visible to later
// reads inside the same transaction. Commit applies the whole batch to the
// database synchronously; Rollback discards it.
//
// Example usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type PebbleUnitOfWork struct {
	db    *pebble.DB
	batch *pebble.Batch
}

// Begin opens a new write batch for the unit of work. Multiple calls to Begin
// on the same instance are safe and will not create nested batches.
func (uow *PebbleUnitOfWork) Begin(_ context.Context) error {
	if uow.batch != nil {
		return nil
	}

	uow.batch = uow.db.NewIndexedBatch()
	return nil
}

// Commit applies all changes made within the current batch to the database.
// After commit, the transaction is closed and cannot be reused.
func (uow *PebbleUnitOfWork) Commit(_ context.Context) error {
	if uow.batch == nil {
		return ErrNoActiveTransaction
	}

	err := uow.batch.Commit(pebble.Sync)
	closeErr := uow.batch.Close()
	uow.batch = nil
	if err != nil {
		return err
	}
	return closeErr
}

// Rollback discards all changes made within the current batch.
// After rollback, the transaction is closed and cannot be reused.
func (uow *PebbleUnitOfWork) Rollback(_ context.Context) error {
	if uow.batch == nil {
		return ErrNoActiveTransaction
	}

	err := uow.batch.Close()
	uow.batch = nil
	return err
}

// backend returns the batch when a transaction is active, the plain database
// otherwise.
func (uow *PebbleUnitOfWork) backend() record.Backend {
	if uow.batch != nil {
		return uow.batch
	}
	return uow.db
}

// UserRepository provides access to user persistence within the unit of work.
func (uow *PebbleUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewPebbleUserRepository(uow.backend())
}

// UserLocationRepository provides access to user location persistence within
// the unit of work.
func (uow *PebbleUnitOfWork) UserLocationRepository() ports.UserLocationRepository {
	return locationrepo.NewPebbleUserLocationRepository(uow.backend())
}

// OrderRepository provides access to order persistence within the unit of work.
func (uow *PebbleUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewPebbleOrderRepository(uow.backend())
}

// PaymentRepository provides access to payment persistence within the unit of work.
func (uow *PebbleUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewPebblePaymentRepository(uow.backend())
}

// ShipmentRepository provides access to shipment persistence within the unit of work.
func (uow *PebbleUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewPebbleShipmentRepository(uow.backend())
}
