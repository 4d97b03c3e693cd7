package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SetUserLocationRequest is the body of PUT and PATCH /api/v1/users/:id/location.
type SetUserLocationRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// UserLocationResponse is the JSON shape of a user location record.
type UserLocationResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Location  GeoPointResponse `json:"location"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt *int64           `json:"updated_at"`
}

func toUserLocationResponse(location queries.GetUserLocationQueryResponse) UserLocationResponse {
	return UserLocationResponse{
		ID:        location.ID.String(),
		UserID:    location.UserID.String(),
		Location:  toGeoPointResponse(location.Location),
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}

// GetUserLocations handles GET /api/v1/locations.
func (s *Server) GetUserLocations(ctx echo.Context) error {
	locations, err := s.handlers.GetAllUserLocations.Handle(
		ctx.Request().Context(), queries.NewGetAllUserLocationsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserLocationResponse, len(locations))
	for i, location := range locations {
		response[i] = toUserLocationResponse(location)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserLocation handles GET /api/v1/users/:id/location.
func (s *Server) GetUserLocation(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	location, err := s.fetchUserLocation(ctx, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserLocationResponse(location))
}

// SetUserLocation handles PUT /api/v1/users/:id/location. An existing
// location record for the user is silently replaced.
func (s *Server) SetUserLocation(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	var request SetUserLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetUserLocationCommand(s.idGen.NewID(), userID, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetUserLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	stored, err := s.fetchUserLocation(ctx, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserLocationResponse(stored))
}

// UpdateUserLocation handles PATCH /api/v1/users/:id/location. Unlike
// SetUserLocation this fails when the user has no location record yet.
func (s *Server) UpdateUserLocation(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	var request SetUserLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateUserLocationCommand(userID, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateUserLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	stored, err := s.fetchUserLocation(ctx, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserLocationResponse(stored))
}

// DeleteUserLocation handles DELETE /api/v1/users/:id/location. The removed
// record is returned in the response body.
func (s *Server) DeleteUserLocation(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	location, err := s.fetchUserLocation(ctx, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserLocationCommand(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteUserLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserLocationResponse(location))
}

func (s *Server) fetchUserLocation(ctx echo.Context, userID kernel.UUID) (queries.GetUserLocationQueryResponse, error) {
	query, err := queries.NewGetUserLocationQuery(userID)
	if err != nil {
		return queries.GetUserLocationQueryResponse{}, err
	}

	return s.handlers.GetUserLocation.Handle(ctx.Request().Context(), query)
}
