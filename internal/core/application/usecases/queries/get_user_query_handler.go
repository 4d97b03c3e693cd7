package queries

import (
	"context"
	"encoding/json"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/cockroachdb/pebble"
)

// userRecord mirrors the stored JSON layout of a user.
type userRecord struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt *int64 `json:"updated_at"`
}

func (r userRecord) toResponse() (GetUserQueryResponse, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	return GetUserQueryResponse{
		ID:        id,
		Username:  r.Username,
		Type:      r.Type,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// GetUserQueryHandler retrieves a single user record from storage.
// Reads the stored bytes directly for optimal read performance in the CQRS
// pattern.
type GetUserQueryHandler struct {
	db *pebble.DB
}

// NewGetUserQueryHandler creates a handler for single-user retrieval.
func NewGetUserQueryHandler(db *pebble.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query to retrieve one user.
// Returns an object not found error when the user does not exist.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	raw, err := getRecord(h.db, usersNamespace, query.UserID().String())
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	var record userRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return GetUserQueryResponse{}, err
	}

	return record.toResponse()
}
