package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/service"
)

type VoteController interface {
	Vote(c echo.Context) error
	Status(c echo.Context) error
}

type voteController struct {
	voteService service.VoteService
}

func newVoteController(voteService service.VoteService) VoteController {
	return &voteController{
		voteService: voteService,
	}
}

func (v *voteController) Vote(c echo.Context) error {
	user, ok := dto.GetUserFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
	}

	var request dto.VoteRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	if request.CandidateID == 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "candidateId is required"})
	}

	ballot, err := v.voteService.CastVote(c.Request().Context(), user.ID, request.CandidateID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, dto.VoteResponse{BallotID: ballot.ID})
}

func (v *voteController) Status(c echo.Context) error {
	user, ok := dto.GetUserFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
	}

	status, err := v.voteService.GetStatus(c.Request().Context(), user.ID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, status)
}
