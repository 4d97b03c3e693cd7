package queries

import (
	"context"
	"encoding/json"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/cockroachdb/pebble"
)

// geoPointRecord mirrors the stored JSON layout of a coordinate pair.
type geoPointRecord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (r geoPointRecord) toGeoPoint() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(r.Lat, r.Lng)
}

// locationRecord mirrors the stored JSON layout of a user location.
type locationRecord struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Location  geoPointRecord `json:"location"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt *int64         `json:"updated_at"`
}

func (r locationRecord) toResponse() (GetUserLocationQueryResponse, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return GetUserLocationQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromString(r.UserID)
	if err != nil {
		return GetUserLocationQueryResponse{}, err
	}

	location, err := r.Location.toGeoPoint()
	if err != nil {
		return GetUserLocationQueryResponse{}, err
	}

	return GetUserLocationQueryResponse{
		ID:        id,
		UserID:    userID,
		Location:  location,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// GetUserLocationQueryHandler retrieves one registered position from storage.
type GetUserLocationQueryHandler struct {
	db *pebble.DB
}

// NewGetUserLocationQueryHandler creates a handler for position retrieval.
func NewGetUserLocationQueryHandler(db *pebble.DB) GetUserLocationQueryHandler {
	return GetUserLocationQueryHandler{db: db}
}

// Handle executes the query to retrieve a user's position.
// Positions are keyed by the owning user, not by their own record id.
func (h GetUserLocationQueryHandler) Handle(
	ctx context.Context,
	query GetUserLocationQuery,
) (GetUserLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserLocationQueryResponse{}, err
	}

	raw, err := getRecord(h.db, locationsNamespace, query.UserID().String())
	if err != nil {
		return GetUserLocationQueryResponse{}, err
	}

	var record locationRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return GetUserLocationQueryResponse{}, err
	}

	return record.toResponse()
}
