package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/voteflow/backend/internal/dto"
)

// errorResponse translates domain errors into HTTP responses. Authentication
// failures are deliberately generic so callers cannot tell which factor
// failed. Anything unmapped is an infrastructure fault: logged in full,
// surfaced without detail.
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dto.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, dto.ErrInvalidCode):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or expired code"})
	case errors.Is(err, dto.ErrNotFound), errors.Is(err, dto.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, dto.ErrNotAuthorized):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
	case errors.Is(err, dto.ErrFederatedAuthFailed):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "federated authentication failed"})
	case errors.Is(err, dto.ErrNotVerified):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "account not verified"})
	case errors.Is(err, dto.ErrUnknownCandidate):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "unknown candidate"})
	case errors.Is(err, dto.ErrDuplicateIdentity):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "account already exists, please login"})
	case errors.Is(err, dto.ErrAlreadyVoted):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "you have already voted"})
	default:
		logrus.Errorf("Internal error handling %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
