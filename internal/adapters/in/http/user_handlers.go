package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

// UpdateUserRequest is the body of PUT /api/v1/users/:id.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

// UserResponse is the JSON shape of a user record.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt *int64 `json:"updated_at"`
}

func toUserResponse(user queries.GetUserQueryResponse) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Type:      user.Type,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.handlers.GetAllUsers.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = toUserResponse(user)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	user, err := s.fetchUser(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(user))
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	userID := s.idGen.NewID()
	cmd, err := commands.NewCreateUserCommand(userID, request.Username, request.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// UpdateUser handles PUT /api/v1/users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	var request UpdateUserRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(id, request.Username, request.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	user, err := s.fetchUser(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/v1/users/:id. The removed user is returned
// in the response body.
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id")
	}

	user, err := s.fetchUser(ctx, id)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) fetchUser(ctx echo.Context, id kernel.UUID) (queries.GetUserQueryResponse, error) {
	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return queries.GetUserQueryResponse{}, err
	}

	return s.handlers.GetUser.Handle(ctx.Request().Context(), query)
}
