// Package order provides domain entities and business logic for order management
// in the shiptrack system. It implements the Order aggregate root with lifecycle
// management and the single system-driven status transition.
//
// The package includes:
//   - Order: The aggregate root carrying the priced delivery request
//   - Status: The free-form order status with the recognized "in_transit" value
//
// Key business rules:
//   - Orders must have a valid unique identifier, description, positive weight,
//     and valid sender/receiver identifiers
//   - Sender and receiver locations are frozen snapshots taken at creation time
//   - The initial amount is priced once at creation and never recomputed
//   - Shipment creation is the only event that moves an order to "in_transit"
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
