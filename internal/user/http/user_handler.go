// Package http provides HTTP handlers for user management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/people/internal/httputil"
	"github.com/allisson/people/internal/user/http/dto"
	userUseCase "github.com/allisson/people/internal/user/usecase"
)

// UserHandler handles HTTP requests for user management operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(useCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: useCase,
		logger:      logger,
	}
}

// CreateHandler registers a new user together with their default profile.
// POST /v1/users
// Returns 201 Created with the user and nested profile.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	result, err := h.userUseCase.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserWithProfileResponse(result))
}

// ListHandler retrieves all users with their profiles.
// GET /v1/users
// Returns 200 OK with an array of users, lazily creating missing profiles.
func (h *UserHandler) ListHandler(c *gin.Context) {
	results, err := h.userUseCase.ListWithProfiles(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserWithProfileResponses(results))
}

// GetHandler retrieves a single user with their profile.
// GET /v1/users/:id
// Returns 200 OK, or 404 Not Found when the user does not exist.
func (h *UserHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	result, err := h.userUseCase.GetWithProfile(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserWithProfileResponse(result))
}

// UpdateHandler applies a partial update to a user.
// PATCH /v1/users/:id
// Returns 200 OK with the updated user and profile.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	result, err := h.userUseCase.Update(c.Request.Context(), id, dto.ToUpdateUserData(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserWithProfileResponse(result))
}

// DeleteHandler removes a user and, through the database cascade, their
// profile.
// DELETE /v1/users/:id
// Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseUserID extracts and validates the id path parameter, writing a 400
// response on failure.
func (h *UserHandler) parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid user id: %w", err), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
