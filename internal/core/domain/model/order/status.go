package order

import "shiptrack/internal/pkg/errs"

// Status represents the lifecycle state of an order.
//
// Status values are caller-supplied, free-form strings ("pending", "confirmed",
// whatever the upstream workflow uses) and are opaque to the system, with one
// exception: InTransit is set by the system itself when a shipment is created
// for the order. That transition is the only system-driven status change.
type Status string

// InTransit is the status the system assigns to an order as a side effect of
// a successful shipment creation referencing it.
const InTransit Status = "in_transit"

// Validate checks that the status is non-empty. Any non-empty value is
// accepted; the system does not restrict caller-supplied statuses.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsInTransit reports whether the system-driven transition has happened.
func (s Status) IsInTransit() bool {
	return s == InTransit
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
