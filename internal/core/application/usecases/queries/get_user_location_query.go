package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetUserLocationQueryIsNotConstructed = errors.New(
	"GetUserLocationQuery must be created via NewGetUserLocationQuery constructor",
)

// GetUserLocationQuery retrieves the position registered for one user.
type GetUserLocationQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserLocationQuery creates a query to retrieve a user's position.
func NewGetUserLocationQuery(userID kernel.UUID) (GetUserLocationQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserLocationQuery{}, err
	}

	return GetUserLocationQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetUserLocationQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose position is retrieved.
func (q GetUserLocationQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserLocationQueryResponse represents a registered position in the read
// model.
type GetUserLocationQueryResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Location  kernel.GeoPoint
	CreatedAt int64
	UpdatedAt *int64
}
