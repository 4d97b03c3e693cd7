// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles storage transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// UserLocationRepoFactory provides access to the user location repository within a transaction.
	UserLocationRepoFactory interface {
		UserLocationRepository() ports.UserLocationRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// UserUoW manages transactions for user operations. Deleting a user also
	// clears the user's registered position, so the location repository is
	// part of the same boundary.
	UserUoW interface {
		TxManager
		UserRepoFactory
		UserLocationRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// LocationUoW manages transactions for user location operations.
	// A position may be registered for a user id that has no stored user;
	// orphaned locations are permitted.
	LocationUoW interface {
		TxManager
		UserLocationRepoFactory
	}

	// LocationUoWFactory creates new user location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// OrderUoW manages transactions for order operations. Creating an order
	// reads sender and receiver positions to price the haul.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserLocationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment operations. The order
	// repository is used for the optional parent order existence check.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// ShipmentUoW manages transactions across shipment and order aggregates.
	// Creating a shipment moves its parent order into transit in the same
	// transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
