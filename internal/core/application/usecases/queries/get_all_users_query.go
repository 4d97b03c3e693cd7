package queries

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves every registered user.
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a query to retrieve all users.
// This is a parameterless query that fetches the complete user list.
func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}
