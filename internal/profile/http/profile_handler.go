// Package http provides HTTP handlers for profile management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/people/internal/httputil"
	"github.com/allisson/people/internal/profile/http/dto"
	profileUseCase "github.com/allisson/people/internal/profile/usecase"
)

// ProfileHandler handles HTTP requests for profile management operations.
type ProfileHandler struct {
	profileUseCase profileUseCase.ProfileUseCase
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler with required dependencies.
func NewProfileHandler(useCase profileUseCase.ProfileUseCase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: useCase,
		logger:         logger,
	}
}

// GetHandler retrieves the profile owned by a user, creating a default one
// on first access.
// GET /v1/users/:id/profile
// Returns 200 OK, or 404 Not Found when the user does not exist.
func (h *ProfileHandler) GetHandler(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileUseCase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// UpdateHandler applies a partial update to a user's profile.
// PATCH /v1/users/:id/profile
// Returns 200 OK with the updated profile.
func (h *ProfileHandler) UpdateHandler(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	profile, err := h.profileUseCase.Update(c.Request.Context(), userID, dto.ToUpdateProfileData(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// parseUserID extracts and validates the id path parameter, writing a 400
// response on failure.
func (h *ProfileHandler) parseUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid user id: %w", err), h.logger)
		return uuid.Nil, false
	}
	return userID, true
}
