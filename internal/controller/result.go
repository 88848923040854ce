package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/voteflow/backend/internal/service"
)

type ResultController interface {
	Results(c echo.Context) error
}

type resultController struct {
	resultService service.ResultService
}

func newResultController(resultService service.ResultService) ResultController {
	return &resultController{
		resultService: resultService,
	}
}

func (r *resultController) Results(c echo.Context) error {
	results, err := r.resultService.ComputeResults(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, results)
}
