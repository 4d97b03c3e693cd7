// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user domain
// aggregate, handling conversion between domain entities and their stored
// JSON representation.
package userrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/user"
)

// Namespace is the key prefix under which user records are stored.
const Namespace = "user"

// UserDTO represents the stored structure for persisting user aggregates.
type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt *int64 `json:"updated_at"`
}

// fromDomain converts a user domain aggregate to its stored representation.
func fromDomain(aggregate *user.User) UserDTO {
	var updatedAt *int64
	if ts := aggregate.UpdatedAt(); ts != nil {
		raw := ts.Int64()
		updatedAt = &raw
	}

	return UserDTO{
		ID:        aggregate.ID().String(),
		Username:  aggregate.Username(),
		Type:      aggregate.Type(),
		CreatedAt: aggregate.CreatedAt().Int64(),
		UpdatedAt: updatedAt,
	}
}

// toDomain converts a stored DTO back to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var updatedAt *kernel.Timestamp
	if dto.UpdatedAt != nil {
		ts := kernel.Timestamp(*dto.UpdatedAt)
		updatedAt = &ts
	}

	return user.RestoreUser(id, dto.Username, dto.Type, kernel.Timestamp(dto.CreatedAt), updatedAt)
}
