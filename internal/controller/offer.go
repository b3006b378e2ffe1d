package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/service"
)

type offerRoutesHandler struct {
	offerService service.Offer
	validate     *validator.Validate
}

func newOfferRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *offerRoutesHandler {
	h := &offerRoutesHandler{offerService: services.Offer, validate: v}

	outer.GET("/price-offers", h.GetOffers)
	outer.POST("/price-offers", h.PostOffer)
	outer.POST("/price-offers/:offerId/accept", h.AcceptOffer)
	outer.POST("/price-offers/:offerId/reject", h.RejectOffer)

	return h
}

type getOffersInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetOffersInput() getOffersInput {
	return getOffersInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /price-offers
func (h *offerRoutesHandler) GetOffers(c echo.Context) error {
	var input = newGetOffersInput()
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
	offers, err := h.offerService.GetOffers(c.Request().Context(), sessionFromContext(c), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, offers); e != nil {
		return e
	}

	return nil
}

type postOfferInput struct {
	PropertyId  string  `json:"property" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description" validate:"max=2000"`
}

// /price-offers
func (h *offerRoutesHandler) PostOffer(c echo.Context) error {
	var input postOfferInput
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

	offer, err := h.offerService.SubmitOffer(c.Request().Context(), sessionFromContext(c), input.PropertyId, input.Amount, input.Description)
	if err == nil {
		if e := c.JSON(http.StatusCreated, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidOfferAmount:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Offer amount must be positive"}); e != nil {
			return e
		}
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	case service.ErrContractorOnly:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only contractors can submit price offers"}); e != nil {
			return e
		}
	case service.ErrPropertyNotListed:
		if e := c.JSON(http.StatusConflict, errorResponse{"Property is not open for price offers"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type decideOfferInput struct {
	OfferId string `param:"offerId" validate:"required,uuid"`
}

// /price-offers/:offerId/accept
func (h *offerRoutesHandler) AcceptOffer(c echo.Context) error {
	var input decideOfferInput
	input.OfferId = c.Param("offerId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	offer, err := h.offerService.AcceptOffer(c.Request().Context(), sessionFromContext(c), input.OfferId)

	return h.writeDecision(c, offer, err)
}

// /price-offers/:offerId/reject
func (h *offerRoutesHandler) RejectOffer(c echo.Context) error {
	var input decideOfferInput
	input.OfferId = c.Param("offerId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	offer, err := h.offerService.RejectOffer(c.Request().Context(), sessionFromContext(c), input.OfferId)

	return h.writeDecision(c, offer, err)
}

func (h *offerRoutesHandler) writeDecision(c echo.Context, offer *entity.PriceOfferOutputModel, err error) error {
	if err == nil {
		if e := c.JSON(http.StatusOK, offer); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrOfferNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no price offer with given id"}); e != nil {
			return e
		}
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	case service.ErrNotPropertyOwner:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the property owner can decide on this offer"}); e != nil {
			return e
		}
	case service.ErrOfferAlreadyDecided:
		if e := c.JSON(http.StatusConflict, errorResponse{"Price offer has already been decided"}); e != nil {
			return e
		}
	case service.ErrNoOpenPriceProposal:
		if e := c.JSON(http.StatusConflict, errorResponse{"Property has no open price proposal"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
