package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/relatecrm/backend/errors"
	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/usecase/auth"
)

// Auth handles session-related HTTP requests
type Auth struct {
	sessionService *auth.SessionService
	logger         *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionService *auth.SessionService, logger *zap.Logger) *Auth {
	return &Auth{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Me handles GET /auth/me
// @Summary      Current user
// @Description  Returns the authenticated user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entities.User
// @Failure      401  {object}  map[string]interface{}  "Not authenticated"
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	return c.JSON(http.StatusOK, user)
}

// Logout handles POST /auth/logout
// @Summary      Log out
// @Description  Revokes the presented access token for its remaining lifetime
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]interface{}  "Invalid token"
// @Router       /auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	token := ExtractToken(c)
	if token == "" {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	if err := h.sessionService.Revoke(c.Request().Context(), token); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
