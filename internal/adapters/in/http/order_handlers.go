package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Description string  `json:"description" validate:"required"`
	Weight      float64 `json:"weight" validate:"gt=0"`
	SenderID    string  `json:"sender_id" validate:"required,uuid"`
	ReceiverID  string  `json:"receiver_id" validate:"required,uuid"`
	Status      string  `json:"status" validate:"required"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id.
type UpdateOrderRequest struct {
	Description string  `json:"description" validate:"required"`
	Weight      float64 `json:"weight" validate:"gt=0"`
	SenderID    string  `json:"sender_id" validate:"required,uuid"`
	ReceiverID  string  `json:"receiver_id" validate:"required,uuid"`
	Status      string  `json:"status" validate:"required"`
}

// OrderResponse is the JSON shape of an order record. The location snapshots
// and the initial amount are frozen at creation time.
type OrderResponse struct {
	ID               string           `json:"id"`
	Description      string           `json:"description"`
	Weight           float64          `json:"weight"`
	SenderID         string           `json:"sender_id"`
	ReceiverID       string           `json:"receiver_id"`
	SenderLocation   GeoPointResponse `json:"sender_location"`
	ReceiverLocation GeoPointResponse `json:"receiver_location"`
	Status           string           `json:"status"`
	InitialAmount    float64          `json:"initial_amount"`
	CreatedAt        int64            `json:"created_at"`
	UpdatedAt        *int64           `json:"updated_at"`
}

func toOrderResponse(o queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:               o.ID.String(),
		Description:      o.Description,
		Weight:           o.Weight,
		SenderID:         o.Sender.String(),
		ReceiverID:       o.Receiver.String(),
		SenderLocation:   toGeoPointResponse(o.SenderLocation),
		ReceiverLocation: toGeoPointResponse(o.ReceiverLocation),
		Status:           o.Status,
		InitialAmount:    o.InitialAmount,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	o, err := s.fetchOrder(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateOrder handles POST /api/v1/orders. Both parties must have a
// registered location; the haul between the two frozen snapshots determines
// the initial amount.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	sender, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid sender id")
	}
	receiver, err := kernel.UUIDFromString(request.ReceiverID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid receiver id")
	}

	orderID := s.idGen.NewID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, request.Description, request.Weight, sender, receiver, order.Status(request.Status),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	o, err := s.fetchOrder(ctx, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/:id. The initial amount and the
// location snapshots never change, whatever the new field values are.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	sender, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid sender id")
	}
	receiver, err := kernel.UUIDFromString(request.ReceiverID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid receiver id")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id, request.Description, request.Weight, sender, receiver, order.Status(request.Status),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	o, err := s.fetchOrder(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id. The removed order is
// returned in the response body.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	o, err := s.fetchOrder(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

func (s *Server) fetchOrder(ctx echo.Context, id kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	return s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
}
