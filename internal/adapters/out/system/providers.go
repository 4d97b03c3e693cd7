// Package system provides the real clock and identifier generator injected
// into command handlers. Tests substitute deterministic fakes.
package system

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
)

// Clock reads the wall clock. Implements ports.Clock.
type Clock struct{}

// NewClock creates a wall clock provider.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current time as a nanosecond timestamp.
func (Clock) Now() kernel.Timestamp {
	return kernel.Timestamp(time.Now().UnixNano())
}

// IDGenerator mints random UUIDs. Implements ports.IDGenerator.
type IDGenerator struct{}

// NewIDGenerator creates a random identifier generator.
func NewIDGenerator() IDGenerator {
	return IDGenerator{}
}

// NewID returns a new random identifier.
func (IDGenerator) NewID() kernel.UUID {
	return kernel.NewUUID()
}
