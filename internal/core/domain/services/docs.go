// Package services provides domain services that implement business rules
// spanning multiple domain entities in the shipping system.
//
// The package includes:
//   - PricingPolicy: A domain service computing the initial charge for an order
//     from haul distance and parcel weight
//
// Domain services hold logic that doesn't naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
