// Package record implements the generic ordered record store on top of
// Pebble. Each entity collection lives in its own key namespace inside a
// single ordered key-value database; records are persisted as JSON.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"shiptrack/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
)

// Backend is the slice of the Pebble API the store needs. Both *pebble.DB and
// *pebble.Batch satisfy it, which is what lets the same repository code run
// directly against the database or inside a transaction.
type Backend interface {
	Get(key []byte) ([]byte, io.Closer, error)
	Set(key, value []byte, opts *pebble.WriteOptions) error
	Delete(key []byte, opts *pebble.WriteOptions) error
	NewIter(o *pebble.IterOptions) (*pebble.Iterator, error)
}

// Store is a generic ordered keyed store for records of type V, persisted as
// JSON under "<namespace>/<key>". Listing returns records in ascending key
// order. It implements ports.RecordStore.
type Store[V any] struct {
	backend   Backend
	namespace string
}

// NewStore creates a record store for one entity namespace.
func NewStore[V any](backend Backend, namespace string) *Store[V] {
	return &Store[V]{
		backend:   backend,
		namespace: namespace,
	}
}

// Insert writes the record under the given key, replacing any existing record
// with the same key.
func (s *Store[V]) Insert(_ context.Context, key string, value V) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err = s.backend.Set(s.recordKey(key), raw, pebble.Sync); err != nil {
		return errs.NewStorageFaultError("insert", err)
	}
	return nil
}

// Get retrieves the record stored under the given key.
func (s *Store[V]) Get(_ context.Context, key string) (V, error) {
	var value V
	if key == "" {
		return value, errs.NewValueIsRequiredError("key")
	}

	raw, closer, err := s.backend.Get(s.recordKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return value, errs.NewObjectNotFoundError(s.namespace, key)
		}
		return value, errs.NewStorageFaultError("get", err)
	}
	defer closer.Close()

	if err = json.Unmarshal(raw, &value); err != nil {
		return value, err
	}
	return value, nil
}

// Remove deletes the record stored under the given key and returns the
// removed record, failing when no such record exists.
func (s *Store[V]) Remove(ctx context.Context, key string) (V, error) {
	value, err := s.Get(ctx, key)
	if err != nil {
		return value, err
	}

	if err = s.backend.Delete(s.recordKey(key), pebble.Sync); err != nil {
		return value, errs.NewStorageFaultError("remove", err)
	}
	return value, nil
}

// Values returns all records in the namespace in ascending key order.
func (s *Store[V]) Values(_ context.Context) ([]V, error) {
	prefix := []byte(s.namespace + "/")
	iter, err := s.backend.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return nil, errs.NewStorageFaultError("iter", err)
	}
	defer iter.Close()

	values := make([]V, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		raw, valErr := iter.ValueAndErr()
		if valErr != nil {
			return nil, errs.NewStorageFaultError("scan", valErr)
		}

		var value V
		if err = json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if err = iter.Error(); err != nil {
		return nil, errs.NewStorageFaultError("scan", err)
	}
	return values, nil
}

func (s *Store[V]) recordKey(key string) []byte {
	return []byte(s.namespace + "/" + key)
}

// prefixUpperBound returns the smallest key greater than every key carrying
// the prefix.
func prefixUpperBound(prefix []byte) []byte {
	upper := make([]byte, len(prefix))
	copy(upper, prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return upper[:i+1]
		}
	}
	return nil
}
