// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a single user by identifier.
//
// Example:
//
//	query, err := NewGetUserQuery(userID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	user, err := NewGetUserQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve user: %w", err)
//	}
//	fmt.Printf("User %s is a %s\n", user.Username, user.Type)
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query to retrieve one user.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the user to retrieve.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserQueryResponse represents user information in the read model.
type GetUserQueryResponse struct {
	ID        kernel.UUID
	Username  string
	Type      string
	CreatedAt int64
	UpdatedAt *int64
}
