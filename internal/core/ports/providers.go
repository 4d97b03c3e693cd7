package ports

import (
	"shiptrack/internal/core/domain/model/kernel"
)

// Clock supplies the current time to command handlers, keeping entity
// timestamps deterministic in tests.
type Clock interface {
	Now() kernel.Timestamp
}

// IDGenerator supplies fresh identifiers for newly created aggregates.
type IDGenerator interface {
	NewID() kernel.UUID
}
