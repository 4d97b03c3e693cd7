package queries

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

var ErrGetAllUserLocationsQueryIsNotConstructed = errors.New(
	"GetAllUserLocationsQuery must be created via NewGetAllUserLocationsQuery constructor",
)

// GetAllUserLocationsQuery retrieves every registered position.
type GetAllUserLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllUserLocationsQuery creates a query to retrieve all positions.
func NewGetAllUserLocationsQuery() GetAllUserLocationsQuery {
	return GetAllUserLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllUserLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUserLocationsQueryIsNotConstructed)
}
