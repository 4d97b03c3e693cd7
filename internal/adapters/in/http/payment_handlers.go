package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreatePaymentRequest is the body of POST /api/v1/payments.
type CreatePaymentRequest struct {
	OrderID string  `json:"order_id" validate:"required,uuid"`
	Amount  float64 `json:"amount" validate:"gt=0"`
	Status  string  `json:"status" validate:"required"`
}

// UpdatePaymentRequest is the body of PUT /api/v1/payments/:id. The parent
// order reference is fixed at creation and cannot be changed.
type UpdatePaymentRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Status string  `json:"status" validate:"required"`
}

// PaymentResponse is the JSON shape of a payment record.
type PaymentResponse struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt *int64  `json:"updated_at"`
}

func toPaymentResponse(p queries.GetPaymentQueryResponse) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		OrderID:   p.OrderID.String(),
		Amount:    p.Amount,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(ctx echo.Context) error {
	payments, err := s.handlers.GetAllPayments.Handle(ctx.Request().Context(), queries.NewGetAllPaymentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = toPaymentResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/:id.
func (s *Server) GetPayment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid payment id")
	}

	p, err := s.fetchPayment(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentResponse(p))
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var request CreatePaymentRequest
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

	paymentID := s.idGen.NewID()
	cmd, err := commands.NewCreatePaymentCommand(paymentID, orderID, request.Amount, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	p, err := s.fetchPayment(ctx, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPaymentResponse(p))
}

// UpdatePayment handles PUT /api/v1/payments/:id.
func (s *Server) UpdatePayment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid payment id")
	}

	var request UpdatePaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePaymentCommand(id, request.Amount, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	p, err := s.fetchPayment(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentResponse(p))
}

func (s *Server) fetchPayment(ctx echo.Context, id kernel.UUID) (queries.GetPaymentQueryResponse, error) {
	query, err := queries.NewGetPaymentQuery(id)
	if err != nil {
		return queries.GetPaymentQueryResponse{}, err
	}

	return s.handlers.GetPayment.Handle(ctx.Request().Context(), query)
}
