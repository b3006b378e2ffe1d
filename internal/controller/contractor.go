package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/service"
)

type contractorRoutesHandler struct {
	contractorService service.Contractor
	validate          *validator.Validate
}

func newContractorRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *contractorRoutesHandler {
	h := &contractorRoutesHandler{contractorService: services.Contractor, validate: v}

	outer.GET("/contractors", h.GetContractors)
	outer.GET("/evaluation-requests", h.GetEvaluationRequests)

	return h
}

type listInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newListInput() listInput {
	return listInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /contractors
func (h *contractorRoutesHandler) GetContractors(c echo.Context) error {
	var input = newListInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	contractors, err := h.contractorService.GetContractors(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, contractors); e != nil {
		return e
	}

	return nil
}

// /evaluation-requests
func (h *contractorRoutesHandler) GetEvaluationRequests(c echo.Context) error {
	var input = newListInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	requests, err := h.contractorService.GetEvaluationRequests(c.Request().Context(), sessionFromContext(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, requests); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrContractorOnly:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only contractors can list evaluation requests"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
