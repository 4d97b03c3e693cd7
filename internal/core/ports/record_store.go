package ports

import "context"

// RecordStore is a generic ordered keyed store for records of type V.
// Keys are unique within a store; listing returns records in ascending
// key order.
type RecordStore[V any] interface {
	// Insert writes the record under the given key, replacing any
	// existing record with the same key.
	Insert(ctx context.Context, key string, value V) error

	// Get retrieves the record stored under the given key.
	// Returns errs.ObjectNotFoundError if no record exists.
	Get(ctx context.Context, key string) (V, error)

	// Remove deletes the record stored under the given key and returns
	// the removed record.
	// Returns errs.ObjectNotFoundError if no record exists.
	Remove(ctx context.Context, key string) (V, error)

	// Values returns all records in ascending key order.
	Values(ctx context.Context) ([]V, error)
}
