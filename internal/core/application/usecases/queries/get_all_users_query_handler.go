package queries

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/pebble"
)

// GetAllUsersQueryHandler retrieves all user records from storage in
// ascending identifier order.
type GetAllUsersQueryHandler struct {
	db *pebble.DB
}

// NewGetAllUsersQueryHandler creates a handler for user list queries.
func NewGetAllUsersQueryHandler(db *pebble.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve all users.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersQuery,
) ([]GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetUserQueryResponse, 0)
	err := scanNamespace(h.db, usersNamespace, func(value []byte) error {
		var record userRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return err
		}

		response, err := record.toResponse()
		if err != nil {
			return err
		}

		users = append(users, response)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
