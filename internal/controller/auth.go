package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/service"
)

type AuthController interface {
	Register(c echo.Context) error
	Verify(c echo.Context) error
	Login(c echo.Context) error
	FederatedLogin(c echo.Context) error
	Me(c echo.Context) error
	ForgotPassword(c echo.Context) error
	ResetPassword(c echo.Context) error
}

type authController struct {
	authService service.AuthService
}

func newAuthController(authService service.AuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

func (a *authController) Register(c echo.Context) error {
	var request dto.RegisterRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := a.authService.Register(c.Request().Context(), request.Name, request.Email, request.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{UserID: user.ID})
}

func (a *authController) Verify(c echo.Context) error {
	var request dto.VerifyRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := a.authService.VerifyEmail(c.Request().Context(), request.Email, request.Code); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "account verified"})
}

func (a *authController) Login(c echo.Context) error {
	var request dto.LoginRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	if request.Email == "" || request.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email and password are required"})
	}

	token, user, err := a.authService.Login(c.Request().Context(), request.Email, request.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Name: user.Name, Email: user.Email})
}

func (a *authController) FederatedLogin(c echo.Context) error {
	var request dto.FederatedLoginRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	if request.IDToken == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "idToken is required"})
	}

	token, user, err := a.authService.LoginFederated(c.Request().Context(), request.IDToken)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Name: user.Name, Email: user.Email})
}

func (a *authController) Me(c echo.Context) error {
	user, ok := dto.GetUserFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
	}

	return c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		PictureURL: user.PictureURL,
		Verified:   user.Verified,
	})
}

func (a *authController) ForgotPassword(c echo.Context) error {
	var request dto.ForgotPasswordRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := a.authService.RequestPasswordReset(c.Request().Context(), request.Email); err != nil {
		return errorResponse(c, err)
	}

	// Same answer whether or not the account exists.
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "if the account exists, a reset code has been sent"})
}

func (a *authController) ResetPassword(c echo.Context) error {
	var request dto.ResetPasswordRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := a.authService.ResetPassword(c.Request().Context(), request.Email, request.Code, request.NewPassword); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
