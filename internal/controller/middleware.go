package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/service"
)

// BearerAuth resolves the bearer token into a user and stores it on the
// request context under dto.UserContextKey.
func BearerAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing authorization header"})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid authorization format"})
			}

			user, err := authService.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return errorResponse(c, err)
			}

			ctx := context.WithValue(c.Request().Context(), dto.UserContextKey, user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
