// Package locationrepo persists user location records. Records are keyed by
// the owning user's identifier, so a user has at most one registered location.
package locationrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/userlocation"
)

// Namespace is the key prefix for user location records.
const Namespace = "userloc"

type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type UserLocationDTO struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Location  GeoPointDTO `json:"location"`
	CreatedAt int64       `json:"created_at"`
	UpdatedAt *int64      `json:"updated_at"`
}

func fromDomain(aggregate *userlocation.UserLocation) UserLocationDTO {
	dto := UserLocationDTO{
		ID:     aggregate.ID().String(),
		UserID: aggregate.UserID().String(),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		CreatedAt: aggregate.CreatedAt().Int64(),
	}

	if ts := aggregate.UpdatedAt(); ts != nil {
		v := ts.Int64()
		dto.UpdatedAt = &v
	}

	return dto
}

func toDomain(dto UserLocationDTO) (*userlocation.UserLocation, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	var updatedAt *kernel.Timestamp
	if dto.UpdatedAt != nil {
		ts := kernel.Timestamp(*dto.UpdatedAt)
		updatedAt = &ts
	}

	return userlocation.RestoreUserLocation(
		id, userID, location, kernel.Timestamp(dto.CreatedAt), updatedAt,
	)
}
