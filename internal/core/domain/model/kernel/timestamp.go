package kernel

// Timestamp is an opaque monotonically increasing instant, expressed in
// nanoseconds since the Unix epoch. Entities record it for created_at and
// updated_at fields; it is assigned by an injected clock, never by the
// entities themselves.
//
// The zero Timestamp means "unset".
type Timestamp int64

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t == 0
}

// After reports whether t is strictly later than other.
func (t Timestamp) After(other Timestamp) bool {
	return t > other
}

// Int64 returns the raw nanosecond value, mainly for persistence and transport.
func (t Timestamp) Int64() int64 {
	return int64(t)
}
