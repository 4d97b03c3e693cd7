package pebblestore

import (
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"shiptrack/internal/pkg/errs"
)

// Open opens (or creates) the record database at the given path.
func Open(path string) (*pebble.DB, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errs.NewStorageFaultError("open", err)
	}
	return db, nil
}

// OpenMem opens a throwaway in-memory database, used in tests.
func OpenMem() (*pebble.DB, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, errs.NewStorageFaultError("open", err)
	}
	return db, nil
}
