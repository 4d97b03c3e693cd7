package queries

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/pebble"
)

// GetAllUserLocationsQueryHandler retrieves all registered positions from
// storage in ascending owner order.
type GetAllUserLocationsQueryHandler struct {
	db *pebble.DB
}

// NewGetAllUserLocationsQueryHandler creates a handler for position list queries.
func NewGetAllUserLocationsQueryHandler(db *pebble.DB) GetAllUserLocationsQueryHandler {
	return GetAllUserLocationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all registered positions.
func (h GetAllUserLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllUserLocationsQuery,
) ([]GetUserLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetUserLocationQueryResponse, 0)
	err := scanNamespace(h.db, locationsNamespace, func(value []byte) error {
		var record locationRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return err
		}

		response, err := record.toResponse()
		if err != nil {
			return err
		}

		locations = append(locations, response)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return locations, nil
}
