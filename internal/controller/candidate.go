package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/service"
)

type CandidateController interface {
	List(c echo.Context) error
}

type candidateController struct {
	candidateService service.CandidateService
}

func newCandidateController(candidateService service.CandidateService) CandidateController {
	return &candidateController{
		candidateService: candidateService,
	}
}

func (cc *candidateController) List(c echo.Context) error {
	candidates, err := cc.candidateService.ListCandidates(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	response := make([]dto.CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		response = append(response, dto.CandidateResponse{
			ID:       candidate.ID,
			Name:     candidate.Name,
			Party:    candidate.Party,
			ImageURL: candidate.ImageURL,
		})
	}

	return c.JSON(http.StatusOK, response)
}
