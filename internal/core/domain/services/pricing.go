package services

// Distance tiers and their per-kilometer rates. Shorter hauls carry a higher
// rate to cover fixed handling costs.
const (
	shortHaulLimitKm  = 10.0
	mediumHaulLimitKm = 50.0

	shortHaulRate  = 30.0
	mediumHaulRate = 25.0
	longHaulRate   = 20.0
)

// PricingPolicy is a domain service that maps a haul distance and a parcel
// weight to a monetary amount using distance-tier breakpoints.
//
// Business rules:
//   - The rate depends only on which distance tier the haul falls into
//   - Tier bounds are half-open on the lower side, so a 10 km haul is
//     already charged at the medium rate and a 50 km haul at the long rate
//   - The amount scales linearly with both distance and weight
//   - The amount is fixed at order creation and never recomputed
//
// The policy does not validate its inputs; the order creation use case
// checks that weight is positive and that both positions exist before
// pricing.
//
// Example usage:
//
//	policy := NewPricingPolicy()
//	distanceKm, _ := senderLocation.DistanceTo(receiverLocation)
//	amount := policy.Price(distanceKm, weight)
type PricingPolicy struct{}

// NewPricingPolicy creates a new PricingPolicy instance.
func NewPricingPolicy() PricingPolicy {
	return PricingPolicy{}
}

// Price computes the charge for carrying a parcel of the given weight over
// the given distance in kilometers.
//
// Tiers:
//   - under 10 km: rate 30 per kilometer per unit of weight
//   - 10 km up to but excluding 50 km: rate 25
//   - 50 km and beyond: rate 20
func (p PricingPolicy) Price(distanceKm float64, weight float64) float64 {
	return distanceKm * p.rateFor(distanceKm) * weight
}

func (p PricingPolicy) rateFor(distanceKm float64) float64 {
	switch {
	case distanceKm < shortHaulLimitKm:
		return shortHaulRate
	case distanceKm < mediumHaulLimitKm:
		return mediumHaulRate
	default:
		return longHaulRate
	}
}
