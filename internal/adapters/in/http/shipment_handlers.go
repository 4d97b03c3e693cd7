package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	OrderID  string  `json:"order_id" validate:"required,uuid"`
	DriverID string  `json:"driver_id" validate:"required,uuid"`
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"lng" validate:"min=-180,max=180"`
}

// UpdateShipmentRequest is the body of PUT /api/v1/shipments/:id. The parent
// order reference is fixed at creation and cannot be changed.
type UpdateShipmentRequest struct {
	DriverID string  `json:"driver_id" validate:"required,uuid"`
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"lng" validate:"min=-180,max=180"`
}

// ShipmentResponse is the JSON shape of a shipment record.
type ShipmentResponse struct {
	ID           string           `json:"id"`
	OrderID      string           `json:"order_id"`
	DriverID     string           `json:"driver_id"`
	LastLocation GeoPointResponse `json:"last_location"`
	CreatedAt    int64            `json:"created_at"`
	UpdatedAt    *int64           `json:"updated_at"`
}

func toShipmentResponse(sh queries.GetShipmentQueryResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:           sh.ID.String(),
		OrderID:      sh.OrderID.String(),
		DriverID:     sh.DriverID.String(),
		LastLocation: toGeoPointResponse(sh.LastLocation),
		CreatedAt:    sh.CreatedAt,
		UpdatedAt:    sh.UpdatedAt,
	}
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.handlers.GetAllShipments.Handle(ctx.Request().Context(), queries.NewGetAllShipmentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = toShipmentResponse(sh)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid shipment id")
	}

	sh, err := s.fetchShipment(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(sh))
}

// CreateShipment handles POST /api/v1/shipments. The referenced order must
// exist; a successful dispatch moves it to in_transit.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid driver id")
	}

	lastLocation, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID := s.idGen.NewID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, driverID, lastLocation)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	sh, err := s.fetchShipment(ctx, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(sh))
}

// UpdateShipment handles PUT /api/v1/shipments/:id.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid shipment id")
	}

	var request UpdateShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid driver id")
	}

	lastLocation, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(id, driverID, lastLocation)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	sh, err := s.fetchShipment(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(sh))
}

func (s *Server) fetchShipment(ctx echo.Context, id kernel.UUID) (queries.GetShipmentQueryResponse, error) {
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return queries.GetShipmentQueryResponse{}, err
	}

	return s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
}
