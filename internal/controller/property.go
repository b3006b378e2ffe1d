package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/service"
)

type propertyRoutesHandler struct {
	propertyService service.Property
	validate        *validator.Validate
}

func newPropertyRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *propertyRoutesHandler {
	h := &propertyRoutesHandler{propertyService: services.Property, validate: v}

	outer.GET("/properties", h.GetProperties)
	outer.POST("/properties", h.PostProperty)
	outer.GET("/properties/:propertyId", h.GetPropertyDetails)
	outer.POST("/properties/:propertyId/admin_review", h.AdminReview)
	// kept for the older admin screens that still call /approve
	outer.POST("/properties/:propertyId/approve", h.AdminReview)
	outer.POST("/properties/:propertyId/assign_contractor", h.AssignContractor)
	outer.POST("/properties/:propertyId/contractor_review", h.ContractorReview)
	outer.POST("/properties/:propertyId/mark_completed", h.MarkCompleted)
	outer.POST("/properties/:propertyId/complete", h.MarkCompleted)

	return h
}

type getPropertiesInput struct {
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected eval_pending price_proposed in_progress completed"`
}

func newGetPropertiesInput() getPropertiesInput {
	return getPropertiesInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /properties
func (h *propertyRoutesHandler) GetProperties(c echo.Context) error {
	var input = newGetPropertiesInput()
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
	properties, err := h.propertyService.GetProperties(c.Request().Context(), sessionFromContext(c), input.Status, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, properties); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidStatusFilter:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown property status"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postPropertyInput struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"required,max=2000"`
	Address        string   `json:"address" validate:"required,max=300"`
	City           string   `json:"city" validate:"required,max=100"`
	Latitude       float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64  `json:"longitude" validate:"gte=-180,lte=180"`
	PlotNumber     string   `json:"plotNumber" validate:"max=50"`
	PropertyType   string   `json:"propertyType" validate:"required,oneof=house apartment"`
	Size           float64  `json:"size" validate:"gt=0"`
	NumberOfFloors int      `json:"numberOfFloors" validate:"gte=0,lte=200"`
	NumberOfRooms  int      `json:"numberOfRooms" validate:"gte=0,lte=500"`
	Condition      string   `json:"condition" validate:"required,oneof=GOOD FAIR POOR DILAPIDATED"`
	WorkAreas      []string `json:"workAreas" validate:"max=50"`
	WorkDetails    string   `json:"workDetails" validate:"max=2000"`
	ImageURLs      []string `json:"imageUrls" validate:"max=20,dive,max=500"`
}

// /properties
func (h *propertyRoutesHandler) PostProperty(c echo.Context) error {
	var input postPropertyInput
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

	model := &entity.CreatePropertyInput{
		Title: input.Title, Description: input.Description,
		Address: input.Address, City: input.City,
		Latitude: input.Latitude, Longitude: input.Longitude,
		PlotNumber: input.PlotNumber, PropertyType: input.PropertyType,
		Size: input.Size, NumberOfFloors: input.NumberOfFloors, NumberOfRooms: input.NumberOfRooms,
		Condition: input.Condition, WorkAreas: input.WorkAreas, WorkDetails: input.WorkDetails,
		ImageURLs: input.ImageURLs,
	}

	property, err := h.propertyService.CreateProperty(c.Request().Context(), sessionFromContext(c), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, property); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getPropertyDetailsInput struct {
	PropertyId string `param:"propertyId" validate:"required,uuid"`
}

// /properties/:propertyId
func (h *propertyRoutesHandler) GetPropertyDetails(c echo.Context) error {
	var input getPropertyDetailsInput
	input.PropertyId = c.Param("propertyId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	property, err := h.propertyService.GetPropertyDetails(c.Request().Context(), sessionFromContext(c), input.PropertyId)
	if err == nil {
		if e := c.JSON(http.StatusOK, property); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type adminReviewInput struct {
	PropertyId string `param:"propertyId" validate:"required,uuid"`
	Action     string `json:"action" validate:"required,oneof=approve reject"`
}

// /properties/:propertyId/admin_review
func (h *propertyRoutesHandler) AdminReview(c echo.Context) error {
	var input adminReviewInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.PropertyId = c.Param("propertyId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	property, err := h.propertyService.AdminReview(c.Request().Context(), sessionFromContext(c), input.PropertyId, input.Action)
	if err == nil {
		if e := c.JSON(http.StatusOK, property); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	case service.ErrAdminOnly:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only admins can review properties"}); e != nil {
			return e
		}
	case service.ErrPropertyNotPending:
		if e := c.JSON(http.StatusConflict, errorResponse{"Property is no longer awaiting admin review"}); e != nil {
			return e
		}
	case service.ErrInvalidReviewAction:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Action must be approve or reject"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type assignContractorInput struct {
	PropertyId   string `param:"propertyId" validate:"required,uuid"`
	ContractorId string `json:"contractorId" validate:"required,uuid"`
}

// /properties/:propertyId/assign_contractor
func (h *propertyRoutesHandler) AssignContractor(c echo.Context) error {
	var input assignContractorInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.PropertyId = c.Param("propertyId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	property, err := h.propertyService.AssignContractor(c.Request().Context(), sessionFromContext(c), input.PropertyId, input.ContractorId)
	if err == nil {
		if e := c.JSON(http.StatusOK, property); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	case service.ErrContractorNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no contractor with given id"}); e != nil {
			return e
		}
	case service.ErrAdminOnly:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only admins can assign contractors"}); e != nil {
			return e
		}
	case service.ErrPropertyNotPending:
		if e := c.JSON(http.StatusConflict, errorResponse{"Contractors can only be assigned while the property awaits review"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type contractorReviewInput struct {
	PropertyId string  `param:"propertyId" validate:"required,uuid"`
	Rating     float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Report     string  `json:"evaluationReport" validate:"required,max=2000"`
	Action     string  `json:"status" validate:"required,oneof=approve reject"`
}

// /properties/:propertyId/contractor_review
func (h *propertyRoutesHandler) ContractorReview(c echo.Context) error {
	var input contractorReviewInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.PropertyId = c.Param("propertyId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	property, err := h.propertyService.ContractorReview(c.Request().Context(), sessionFromContext(c), input.PropertyId, input.Rating, input.Report, input.Action)
	if err == nil {
		if e := c.JSON(http.StatusOK, property); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	case service.ErrContractorOnly, service.ErrNotAssignedContractor:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the assigned contractor can evaluate this property"}); e != nil {
			return e
		}
	case service.ErrPropertyNotEvaluable:
		if e := c.JSON(http.StatusConflict, errorResponse{"Property is not awaiting evaluation"}); e != nil {
			return e
		}
	case service.ErrInvalidRating, service.ErrEmptyEvaluationReport, service.ErrInvalidReviewAction:
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type markCompletedInput struct {
	PropertyId string   `param:"propertyId" validate:"required,uuid"`
	ImageURLs  []string `json:"imageUrls" validate:"max=20,dive,max=500"`
	Note       string   `json:"note" validate:"max=2000"`
}

// /properties/:propertyId/mark_completed
func (h *propertyRoutesHandler) MarkCompleted(c echo.Context) error {
	var input markCompletedInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.PropertyId = c.Param("propertyId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	property, err := h.propertyService.MarkCompleted(c.Request().Context(), sessionFromContext(c), input.PropertyId, input.ImageURLs, input.Note)
	if err == nil {
		if e := c.JSON(http.StatusOK, property); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrNoCompletionImages:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"At least one completion image is required"}); e != nil {
			return e
		}
	case service.ErrPropertyNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no property with given id"}); e != nil {
			return e
		}
	case service.ErrContractorOnly, service.ErrNotAssignedContractor:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Only the assigned contractor can complete this property"}); e != nil {
			return e
		}
	case service.ErrPropertyNotInProgress:
		if e := c.JSON(http.StatusConflict, errorResponse{"Work on the property is not in progress"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
