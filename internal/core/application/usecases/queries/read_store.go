package queries

import (
	"errors"

	"shiptrack/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
)

// Storage namespaces, shared with the write-side repositories. Each entity
// collection lives under its own key prefix so collisions across entities are
// impossible.
const (
	usersNamespace     = "user"
	locationsNamespace = "userloc"
	ordersNamespace    = "order"
	paymentsNamespace  = "payment"
	shipmentsNamespace = "shipment"
)

func recordKey(namespace string, id string) []byte {
	return []byte(namespace + "/" + id)
}

// getRecord fetches one raw record and copies it out of pebble's buffer
// before the closer releases it.
func getRecord(db *pebble.DB, namespace string, id string) ([]byte, error) {
	value, closer, err := db.Get(recordKey(namespace, id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errs.NewObjectNotFoundError(namespace, id)
		}
		return nil, errs.NewStorageFaultError("get", err)
	}
	defer closer.Close()

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// scanNamespace visits every record under the namespace in ascending key
// order.
func scanNamespace(db *pebble.DB, namespace string, visit func(value []byte) error) error {
	prefix := []byte(namespace + "/")
	iter, err := db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return errs.NewStorageFaultError("iter", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			return errs.NewStorageFaultError("scan", err)
		}
		if err = visit(value); err != nil {
			return err
		}
	}

	if err = iter.Error(); err != nil {
		return errs.NewStorageFaultError("scan", err)
	}
	return nil
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
