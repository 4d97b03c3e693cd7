// Package http exposes the record-keeping operations over a REST surface.
// Handlers bind and validate request bodies, mint identifiers, build
// commands or queries and translate application errors to status codes.
package http

import (
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateUser         commands.CreateUserCommandHandler
	UpdateUser         commands.UpdateUserCommandHandler
	DeleteUser         commands.DeleteUserCommandHandler
	SetUserLocation    commands.SetUserLocationCommandHandler
	UpdateUserLocation commands.UpdateUserLocationCommandHandler
	DeleteUserLocation commands.DeleteUserLocationCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	CreatePayment      commands.CreatePaymentCommandHandler
	UpdatePayment      commands.UpdatePaymentCommandHandler
	CreateShipment     commands.CreateShipmentCommandHandler
	UpdateShipment     commands.UpdateShipmentCommandHandler

	// Query handlers
	GetUser             queries.GetUserQueryHandler
	GetAllUsers         queries.GetAllUsersQueryHandler
	GetUserLocation     queries.GetUserLocationQueryHandler
	GetAllUserLocations queries.GetAllUserLocationsQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetPayment          queries.GetPaymentQueryHandler
	GetAllPayments      queries.GetAllPaymentsQueryHandler
	GetShipment         queries.GetShipmentQueryHandler
	GetAllShipments     queries.GetAllShipmentsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	idGen    ports.IDGenerator
}

// NewServer creates a new HTTP server with the required command and query
// handlers. New entity identifiers are minted through the given generator.
func NewServer(handlers Handlers, idGen ports.IDGenerator) *Server {
	return &Server{
		handlers: handlers,
		idGen:    idGen,
	}
}

// RegisterRoutes attaches all entity routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/users", s.GetUsers)
	api.POST("/users", s.CreateUser)
	api.GET("/users/:id", s.GetUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	api.GET("/locations", s.GetUserLocations)
	api.GET("/users/:id/location", s.GetUserLocation)
	api.PUT("/users/:id/location", s.SetUserLocation)
	api.PATCH("/users/:id/location", s.UpdateUserLocation)
	api.DELETE("/users/:id/location", s.DeleteUserLocation)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/payments", s.GetPayments)
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/:id", s.GetPayment)
	api.PUT("/payments/:id", s.UpdatePayment)

	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// GeoPointResponse is the JSON shape of a coordinate pair.
type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toGeoPointResponse(p kernel.GeoPoint) GeoPointResponse {
	return GeoPointResponse{Lat: p.Lat(), Lng: p.Lng()}
}
