package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/service"
)

type Controllers interface {
	Auth() AuthController
	Candidate() CandidateController
	Vote() VoteController
	Result() ResultController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	authController      AuthController
	candidateController CandidateController
	voteController      VoteController
	resultController    ResultController
	infoController      InfoController

	authService service.AuthService
	config      dto.Config
}

func NewControllers(services service.Services, config dto.Config) Controllers {
	return &controllers{
		authController:      newAuthController(services.Auth()),
		candidateController: newCandidateController(services.Candidate()),
		voteController:      newVoteController(services.Vote()),
		resultController:    newResultController(services.Result()),
		infoController:      newInfoController(),
		authService:         services.Auth(),
		config:              config,
	}
}

func (c controllers) Auth() AuthController {
	return c.authController
}

func (c controllers) Candidate() CandidateController {
	return c.candidateController
}

func (c controllers) Vote() VoteController {
	return c.voteController
}

func (c controllers) Result() ResultController {
	return c.resultController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.GET("/healthz", c.infoController.Info)

	api := e.Group("/api")
	api.POST("/register", c.authController.Register)
	api.POST("/verify", c.authController.Verify)
	api.POST("/login", c.authController.Login)
	api.POST("/federated-login", c.authController.FederatedLogin)
	api.POST("/forgot-password", c.authController.ForgotPassword)
	api.POST("/reset-password", c.authController.ResetPassword)
	api.GET("/candidates", c.candidateController.List)
	api.GET("/results", c.resultController.Results)

	authed := api.Group("")
	authed.Use(BearerAuth(c.authService))
	authed.GET("/me", c.authController.Me)
	authed.GET("/status", c.voteController.Status)
	authed.POST("/vote", c.voteController.Vote)

	// Static frontend is an external collaborator; serve it only when a
	// directory is configured.
	if c.config.StaticDir != "" {
		e.Static("/", c.config.StaticDir)
	}
}
